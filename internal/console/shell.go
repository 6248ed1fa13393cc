package console

import (
	"bufio"
	"context"
	"ctchen222/nxn-tictactoe/internal/game"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// ErrQuitRequested is returned by Run when the player quits or input ends.
var ErrQuitRequested = errors.New("quit requested")

// MoveCalculator picks the computer's move.
type MoveCalculator interface {
	CalculateNextMove(b *game.Board) (int, error)
}

// Settings are the values offered as defaults at startup.
type Settings struct {
	Size int
	Mode game.Mode
}

// Shell plays rounds on a terminal.
type Shell struct {
	in         *bufio.Scanner
	out        io.Writer
	calculator MoveCalculator
}

func NewShell(in io.Reader, out io.Writer, calculator MoveCalculator) *Shell {
	return &Shell{
		in:         bufio.NewScanner(in),
		out:        out,
		calculator: calculator,
	}
}

// Run asks for the board size and mode, then plays rounds until the player
// declines a replay or quits. It always returns a non-nil error;
// ErrQuitRequested means a regular exit.
func (s *Shell) Run(ctx context.Context, defaults Settings) error {
	size, err := s.askSize(defaults.Size)
	if err != nil {
		return err
	}
	mode, err := s.askMode(defaults.Mode)
	if err != nil {
		return err
	}

	session, err := game.NewSession(size, mode)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "Game started", "size", size, "mode", mode.String())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printf("Round %d\n", session.Round())

		outcome, err := s.playRound(ctx, session)
		if err != nil {
			return err
		}

		s.render(session.Board())
		if outcome.Status == game.StatusWon {
			s.printf("%s WON!\n", outcome.Winner)
		} else {
			s.printf("It's a draw!\n")
		}
		slog.InfoContext(ctx, "Round finished", "round", session.Round(), "status", outcome.Status, "winner", outcome.Winner)

		answer, err := s.prompt("Play again? (y-yes): ")
		if err != nil {
			return err
		}
		if strings.ToLower(answer) != "y" {
			return ErrQuitRequested
		}
		if err := session.Restart(size, mode); err != nil {
			return err
		}
	}
}

func (s *Shell) playRound(ctx context.Context, session *game.Session) (game.Outcome, error) {
	for {
		var (
			slot int
			err  error
		)
		if session.IsComputerTurn() {
			slot, err = s.calculator.CalculateNextMove(session.Board())
			if err != nil {
				return game.Outcome{}, fmt.Errorf("failed to calculate computer move: %w", err)
			}
			s.printf("Computer chose field %d\n", slot)
		} else {
			slot, err = s.askMove(session)
			if err != nil {
				return game.Outcome{}, err
			}
		}

		p, outcome, err := session.SubmitMove(slot)
		if err != nil {
			return game.Outcome{}, err
		}
		slog.DebugContext(ctx, "Move applied", "slot", p.Slot, "mark", p.Mark)
		if outcome.Terminal() {
			return outcome, nil
		}
	}
}

func (s *Shell) askSize(def int) (int, error) {
	for {
		answer, err := s.prompt(fmt.Sprintf("Board size (odd, at least %d) [%d]: ", game.MinBoardSize, def))
		if err != nil {
			return 0, err
		}
		size := def
		if answer != "" {
			if size, err = strconv.Atoi(answer); err != nil {
				s.printf("Numbers only, try again\n")
				continue
			}
		}
		if _, err := game.NewBoard(size); err != nil {
			s.printf("%v, try again\n", err)
			continue
		}
		return size, nil
	}
}

func (s *Shell) askMode(def game.Mode) (game.Mode, error) {
	for {
		answer, err := s.prompt(fmt.Sprintf("Mode (1 - against the computer, 2 - two players) [%d]: ", def))
		if err != nil {
			return 0, err
		}
		mode := def
		if answer != "" {
			n, err := strconv.Atoi(answer)
			if err != nil {
				s.printf("Numbers only, try again\n")
				continue
			}
			mode = game.Mode(n)
		}
		if !mode.Valid() {
			s.printf("Choose 1 or 2, try again\n")
			continue
		}
		return mode, nil
	}
}

func (s *Shell) askMove(session *game.Session) (int, error) {
	size := session.Size()
	for {
		s.render(session.Board())
		s.printf("Player %s\n", session.CurrentPlayer())
		answer, err := s.prompt("Choose your field (q to quit): ")
		if err != nil {
			return 0, err
		}
		slot, err := strconv.Atoi(answer)
		if err != nil {
			s.printf("Numbers only, try again\n")
			continue
		}
		if !slices.Contains(session.AvailableMoves(), slot) {
			s.printf("Choose an available field between [1, %d], try again\n", size*size)
			continue
		}
		return slot, nil
	}
}

// prompt prints msg and reads one trimmed line. q quits.
func (s *Shell) prompt(msg string) (string, error) {
	s.printf("%s", msg)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrQuitRequested
	}
	answer := strings.TrimSpace(s.in.Text())
	if strings.EqualFold(answer, "q") {
		return "", ErrQuitRequested
	}
	return answer, nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
