package gomoku

import "fmt"

// HumanPlayer holds the move supplied by the external input boundary
// until the session asks for it.
type HumanPlayer struct {
	pending     bool
	pendingMove Move
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) ChooseMove(GameState, Rules) (Move, error) {
	if !h.pending {
		return Move{}, fmt.Errorf("no pending human move")
	}
	h.pending = false
	return h.pendingMove, nil
}

func (h *HumanPlayer) SetPendingMove(move Move) {
	h.pendingMove = move
	h.pending = true
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.pending
}
