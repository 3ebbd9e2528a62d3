package gomoku

// Player produces moves for one side. Strategies are a closed set: human
// input, random (easy), heuristic win/block (medium) and minimax
// alpha-beta (hard).
type Player interface {
	IsHuman() bool
	ChooseMove(state GameState, rules Rules) (Move, error)
}

// NewBotPlayer maps a difficulty to its strategy.
func NewBotPlayer(difficulty Difficulty, config Config) (Player, error) {
	switch difficulty {
	case DifficultyEasy:
		return NewRandomPlayer(), nil
	case DifficultyMedium:
		return NewHeuristicPlayer(config), nil
	case DifficultyHard:
		return NewMinimaxPlayer(config)
	default:
		return nil, invalidConfig("difficulty", int(difficulty))
	}
}
