package gomoku

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerBot
)

// Difficulty selects one of the closed set of bot strategies.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

type GameSettings struct {
	BoardSize       int        `json:"board_size"`
	WinLength       int        `json:"win_length"`
	BlackType       PlayerType `json:"-"`
	WhiteType       PlayerType `json:"-"`
	BlackDifficulty Difficulty `json:"-"`
	WhiteDifficulty Difficulty `json:"-"`
	BlackStarts     bool       `json:"black_starts"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize:       15,
		WinLength:       5,
		BlackType:       PlayerHuman,
		WhiteType:       PlayerBot,
		BlackDifficulty: DifficultyMedium,
		WhiteDifficulty: DifficultyMedium,
		BlackStarts:     true,
	}
}

// Validate fails fast on settings the engine cannot run with.
func (s GameSettings) Validate() error {
	if s.BoardSize <= 0 {
		return invalidConfig("board_size", s.BoardSize)
	}
	if s.WinLength < 2 {
		return invalidConfig("win_length", s.WinLength)
	}
	if s.WinLength > s.BoardSize {
		return invalidConfig("win_length", s.WinLength)
	}
	if err := validDifficulty("black_difficulty", s.BlackType, s.BlackDifficulty); err != nil {
		return err
	}
	return validDifficulty("white_difficulty", s.WhiteType, s.WhiteDifficulty)
}

func validDifficulty(field string, playerType PlayerType, d Difficulty) error {
	if playerType != PlayerBot {
		return nil
	}
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	}
	return invalidConfig(field, int(d))
}
