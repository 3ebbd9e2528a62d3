package gomoku

import (
	"fmt"

	"lukechampine.com/frand"
)

// RandomPlayer plays a uniformly random legal move (Easy difficulty).
type RandomPlayer struct{}

func NewRandomPlayer() *RandomPlayer {
	return &RandomPlayer{}
}

func (p *RandomPlayer) IsHuman() bool {
	return false
}

func (p *RandomPlayer) ChooseMove(state GameState, rules Rules) (Move, error) {
	moves := state.Board.LegalMoves()
	if len(moves) == 0 {
		return Move{}, fmt.Errorf("random player: no legal moves")
	}
	return moves[frand.Intn(len(moves))], nil
}
