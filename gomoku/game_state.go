package gomoku

type PlayerColor int

const (
	PlayerBlack PlayerColor = iota
	PlayerWhite
)

func (p PlayerColor) String() string {
	if p == PlayerBlack {
		return "black"
	}
	return "white"
}

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
)

func (s GameStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	default:
		return "draw"
	}
}

// Terminal reports whether the game has ended.
func (s GameStatus) Terminal() bool {
	return s == StatusBlackWon || s == StatusWhiteWon || s == StatusDraw
}

// Winner returns the winning player for a won status.
func (s GameStatus) Winner() (PlayerColor, bool) {
	switch s {
	case StatusBlackWon:
		return PlayerBlack, true
	case StatusWhiteWon:
		return PlayerWhite, true
	default:
		return PlayerBlack, false
	}
}

func wonStatus(player PlayerColor) GameStatus {
	if player == PlayerBlack {
		return StatusBlackWon
	}
	return StatusWhiteWon
}

// GameState is the full mutable state of one game. Search mutates a state
// through applyMove/undoMove only, and leaves it bit-identical on return.
type GameState struct {
	Board       Board
	ToMove      PlayerColor
	Status      GameStatus
	Hash        uint64
	WinningLine []Move
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewBoard(settings.BoardSize)
	if settings.BlackStarts {
		s.ToMove = PlayerBlack
	} else {
		s.ToMove = PlayerWhite
	}
	s.Status = StatusNotStarted
	s.WinningLine = nil
	s.Hash = ComputeHash(*s)
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.WinningLine = append([]Move(nil), s.WinningLine...)
	return clone
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}
