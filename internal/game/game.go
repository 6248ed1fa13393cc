package game

import "fmt"

// Mode selects who plays the two marks.
type Mode int

const (
	// ModeVsComputer pits a human against the computer, which plays X and
	// opens every round.
	ModeVsComputer Mode = 1
	// ModeTwoPlayers is hot-seat play between two humans.
	ModeTwoPlayers Mode = 2
)

func (m Mode) Valid() bool {
	return m == ModeVsComputer || m == ModeTwoPlayers
}

func (m Mode) String() string {
	switch m {
	case ModeVsComputer:
		return "computer"
	case ModeTwoPlayers:
		return "human"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Status is the coarse state of a session.
type Status string

const (
	StatusContinue Status = "continue"
	StatusWon      Status = "won"
	StatusDraw     Status = "draw"
)

// Outcome is computed after every placement. Winner is set only when Status
// is StatusWon.
type Outcome struct {
	Status Status
	Winner PlayerMark
}

// Terminal reports whether the game has ended.
func (o Outcome) Terminal() bool {
	return o.Status == StatusWon || o.Status == StatusDraw
}

// State is the session state machine position.
type State int

const (
	StateAwaitingMove State = iota
	StateEvaluating
	StateWon
	StateDraw
)

func (s State) String() string {
	switch s {
	case StateAwaitingMove:
		return "awaiting_move"
	case StateEvaluating:
		return "evaluating"
	case StateWon:
		return "won"
	case StateDraw:
		return "draw"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Placement describes a mark that was put on the board.
type Placement struct {
	Slot int        `json:"slot"`
	Mark PlayerMark `json:"mark"`
	Row  int        `json:"row"`
	Col  int        `json:"col"`
}

// Session owns one board and the turn state machine around it. It is not
// safe for concurrent use.
type Session struct {
	board   *Board
	mode    Mode
	state   State
	current PlayerMark
	outcome Outcome
	round   int
	history []Placement
}

// NewSession starts the first round on a fresh board.
func NewSession(size int, mode Mode) (*Session, error) {
	s := &Session{}
	if err := s.Restart(size, mode); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart replaces the board and returns the session to its initial state.
// On error the session is left untouched.
func (s *Session) Restart(size int, mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown game mode %d", int(mode))
	}
	board, err := NewBoard(size)
	if err != nil {
		return err
	}

	s.board = board
	s.mode = mode
	s.state = StateAwaitingMove
	s.current = PlayerX
	s.outcome = Outcome{Status: StatusContinue}
	s.history = nil
	s.round++
	return nil
}

// SubmitMove places the current player's mark on slot and evaluates the
// board. A move that completes a line wins even if it also fills the board.
func (s *Session) SubmitMove(slot int) (Placement, Outcome, error) {
	if s.state != StateAwaitingMove {
		return Placement{}, s.outcome, ErrGameFinished
	}

	mark := s.current
	if err := s.board.Place(slot, mark); err != nil {
		return Placement{}, s.outcome, err
	}
	p := Placement{
		Slot: slot,
		Mark: mark,
		Row:  (slot - 1) / s.board.size,
		Col:  (slot - 1) % s.board.size,
	}
	s.history = append(s.history, p)

	s.state = StateEvaluating
	s.evaluate(mark)
	return p, s.outcome, nil
}

func (s *Session) evaluate(mover PlayerMark) {
	if winner, ok := ScanWin(s.board); ok {
		s.state = StateWon
		s.outcome = Outcome{Status: StatusWon, Winner: winner}
		return
	}
	if s.board.IsFull() {
		s.state = StateDraw
		s.outcome = Outcome{Status: StatusDraw}
		return
	}
	s.state = StateAwaitingMove
	s.current = mover.Opponent()
	s.outcome = Outcome{Status: StatusContinue}
}

func (s *Session) CurrentPlayer() PlayerMark {
	return s.current
}

func (s *Session) Outcome() Outcome {
	return s.outcome
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) AvailableMoves() []int {
	return s.board.AvailableMoves()
}

// Board returns the live board. Callers must not mutate it.
func (s *Session) Board() *Board {
	return s.board
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Size() int {
	return s.board.size
}

// Round counts restarts, starting at 1.
func (s *Session) Round() int {
	return s.round
}

// History returns the placements of the current round in play order.
func (s *Session) History() []Placement {
	out := make([]Placement, len(s.history))
	copy(out, s.history)
	return out
}

// ComputerMark returns the mark played by the computer, or None when both
// players are human.
func (s *Session) ComputerMark() PlayerMark {
	if s.mode == ModeVsComputer {
		return PlayerX
	}
	return None
}

// IsComputerTurn reports whether the computer should move next.
func (s *Session) IsComputerTurn() bool {
	return s.state == StateAwaitingMove && s.ComputerMark() == s.current
}
