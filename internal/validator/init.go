package validator

import (
	"ctchen222/nxn-tictactoe/internal/game"

	"github.com/go-playground/validator/v10"
)

// MaxBoardSize bounds boards requested through the service.
const MaxBoardSize = 15

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := Register(validate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// Register adds the game specific tags to v:
//
//	boardsize  odd integer between 3 and MaxBoardSize
//	gamemode   1 (versus computer) or 2 (two players)
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("boardsize", func(fl validator.FieldLevel) bool {
		size := int(fl.Field().Int())
		return size >= game.MinBoardSize && size <= MaxBoardSize && size%2 == 1
	}); err != nil {
		return err
	}
	return v.RegisterValidation("gamemode", func(fl validator.FieldLevel) bool {
		return game.Mode(fl.Field().Int()).Valid()
	})
}
