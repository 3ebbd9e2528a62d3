package gomoku

// MinimaxPlayer is the Hard difficulty: iterative-deepening minimax with
// alpha-beta pruning over proximity-restricted candidates. The
// transposition table persists across turns of one game.
type MinimaxPlayer struct {
	config Config
	tt     *TranspositionTable
}

func NewMinimaxPlayer(config Config) (*MinimaxPlayer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	var tt *TranspositionTable
	if config.AiTtSize > 0 {
		tt = NewTranspositionTable(config.AiTtSize, config.AiTtBuckets)
	}
	return &MinimaxPlayer{config: config, tt: tt}, nil
}

func (p *MinimaxPlayer) IsHuman() bool {
	return false
}

func (p *MinimaxPlayer) ChooseMove(state GameState, rules Rules) (Move, error) {
	// Search on a private clone; ChooseMove must not disturb the
	// caller's state even transiently.
	scratch := state.Clone()
	settings := SearchSettingsFromConfig(p.config)
	settings.TT = p.tt
	result, err := SelectMove(&scratch, rules, settings)
	if err != nil {
		return Move{}, err
	}
	return result.Move, nil
}

func (p *MinimaxPlayer) ResetCache() {
	if p.tt != nil {
		p.tt.Clear()
	}
}
