package gomoku

import (
	"testing"

	"github.com/matryer/is"
)

func TestMoveHistoryPushAndAll(t *testing.T) {
	is := is.New(t)
	var h MoveHistory
	is.Equal(h.Size(), 0)
	_, ok := h.Last()
	is.True(!ok)

	h.Push(HistoryEntry{Move: Move{X: 7, Y: 7}, Player: PlayerBlack})
	h.Push(HistoryEntry{Move: Move{X: 8, Y: 8}, Player: PlayerWhite, IsAi: true, Depth: 4})
	is.Equal(h.Size(), 2)

	last, ok := h.Last()
	is.True(ok)
	is.Equal(last.Move, Move{X: 8, Y: 8})
	is.True(last.IsAi)

	all := h.All()
	is.Equal(len(all), 2)
	all[0].Move = Move{X: 0, Y: 0}
	is.Equal(h.All()[0].Move, Move{X: 7, Y: 7})
}

func TestMoveHistoryClear(t *testing.T) {
	is := is.New(t)
	var h MoveHistory
	h.Push(HistoryEntry{Move: Move{X: 1, Y: 1}, Player: PlayerBlack})
	h.Clear()
	is.Equal(h.Size(), 0)
	is.Equal(len(h.All()), 0)
}
