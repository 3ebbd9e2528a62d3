package gomoku

import (
	"fmt"

	"github.com/samber/lo"
	"lukechampine.com/frand"
)

// HeuristicPlayer is the Medium difficulty: take an immediate win, block
// an immediate opponent win, otherwise prefer the center, a free corner,
// and finally the candidate with the best one-ply evaluation.
type HeuristicPlayer struct {
	gen     MoveGenerator
	weights HeuristicConfig
}

func NewHeuristicPlayer(config Config) *HeuristicPlayer {
	radius := config.AiProximityRadius
	if radius <= 0 {
		radius = DefaultConfig().AiProximityRadius
	}
	return &HeuristicPlayer{gen: NewMoveGenerator(radius), weights: config.Heuristics}
}

func (p *HeuristicPlayer) IsHuman() bool {
	return false
}

func (p *HeuristicPlayer) ChooseMove(state GameState, rules Rules) (Move, error) {
	board := state.Board
	player := state.ToMove
	candidates := p.gen.Candidates(board)
	if len(candidates) == 0 {
		return Move{}, fmt.Errorf("heuristic player: no legal moves")
	}

	if win, ok := findWinningMove(&board, rules, candidates, player); ok {
		return win, nil
	}
	if block, ok := findWinningMove(&board, rules, candidates, otherPlayer(player)); ok {
		return block, nil
	}

	center := Move{X: board.Size() / 2, Y: board.Size() / 2}
	if board.IsEmpty(center.X, center.Y) {
		return center, nil
	}

	size := board.Size()
	corners := []Move{
		{X: 0, Y: 0},
		{X: size - 1, Y: 0},
		{X: 0, Y: size - 1},
		{X: size - 1, Y: size - 1},
	}
	freeCorners := lo.Filter(corners, func(m Move, _ int) bool {
		return board.IsEmpty(m.X, m.Y)
	})
	if len(freeCorners) > 0 {
		return freeCorners[frand.Intn(len(freeCorners))], nil
	}

	best := candidates[0]
	bestScore := 0.0
	for i, move := range candidates {
		score, err := scoreAfterMove(&board, move, player, p.weights)
		if err != nil {
			return Move{}, err
		}
		if i == 0 || score > bestScore {
			best = move
			bestScore = score
		}
	}
	return best, nil
}

// findWinningMove probes each candidate for player and reports the first
// that completes a winning run. The probe is undone before returning.
func findWinningMove(board *Board, rules Rules, candidates []Move, player PlayerColor) (Move, bool) {
	for _, move := range candidates {
		if board.Place(move, player) != nil {
			continue
		}
		win := rules.IsWin(*board, move)
		if err := board.Undo(move); err != nil {
			panic(fmt.Sprintf("heuristic player: undo failed at %s: %v", move, err))
		}
		if win {
			return move, true
		}
	}
	return Move{}, false
}

func scoreAfterMove(board *Board, move Move, player PlayerColor, weights HeuristicConfig) (float64, error) {
	if err := board.Place(move, player); err != nil {
		return 0, err
	}
	score := EvaluateBoard(*board, player, weights)
	if err := board.Undo(move); err != nil {
		return 0, err
	}
	return score, nil
}
