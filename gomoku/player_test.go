package gomoku

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestNewBotPlayerByDifficulty(t *testing.T) {
	is := is.New(t)
	config := DefaultConfig()

	easy, err := NewBotPlayer(DifficultyEasy, config)
	is.NoErr(err)
	_, ok := easy.(*RandomPlayer)
	is.True(ok)

	medium, err := NewBotPlayer(DifficultyMedium, config)
	is.NoErr(err)
	_, ok = medium.(*HeuristicPlayer)
	is.True(ok)

	hard, err := NewBotPlayer(DifficultyHard, config)
	is.NoErr(err)
	_, ok = hard.(*MinimaxPlayer)
	is.True(ok)
}

func TestNewBotPlayerRejectsUnknownDifficulty(t *testing.T) {
	is := is.New(t)
	_, err := NewBotPlayer(Difficulty(9), DefaultConfig())
	is.True(errors.Is(err, ErrInvalidConfiguration))
}

func TestNewMinimaxPlayerRejectsBadConfig(t *testing.T) {
	is := is.New(t)
	config := DefaultConfig()
	config.AiDepth = 0
	_, err := NewMinimaxPlayer(config)
	is.True(errors.Is(err, ErrInvalidConfiguration))
}

func TestHumanPlayerPendingMove(t *testing.T) {
	is := is.New(t)
	settings := testSettings(15, 5)
	state := DefaultGameState(settings)
	rules := NewRules(settings)

	h := NewHumanPlayer()
	is.True(h.IsHuman())
	is.True(!h.HasPendingMove())
	_, err := h.ChooseMove(state, rules)
	is.True(err != nil)

	h.SetPendingMove(Move{X: 7, Y: 7})
	is.True(h.HasPendingMove())
	move, err := h.ChooseMove(state, rules)
	is.NoErr(err)
	is.Equal(move, Move{X: 7, Y: 7})
	is.True(!h.HasPendingMove())
}

func TestRandomPlayerReturnsLegalMove(t *testing.T) {
	is := is.New(t)
	settings := testSettings(5, 5)
	state := DefaultGameState(settings)
	state.Status = StatusRunning
	placeAll(t, &state.Board, PlayerBlack, Move{X: 2, Y: 2})
	rules := NewRules(settings)

	p := NewRandomPlayer()
	is.True(!p.IsHuman())
	for i := 0; i < 20; i++ {
		move, err := p.ChooseMove(state, rules)
		is.NoErr(err)
		is.True(state.Board.IsEmpty(move.X, move.Y))
	}
}

func TestMinimaxPlayerLeavesStateUntouched(t *testing.T) {
	is := is.New(t)
	config := DefaultConfig()
	config.AiDepth = 2
	p, err := NewMinimaxPlayer(config)
	is.NoErr(err)

	state := midgameState(t, 15)
	snapshot := state.Clone()
	move, err := p.ChooseMove(state, NewRules(testSettings(15, 5)))
	is.NoErr(err)
	is.True(state.Board.IsEmpty(move.X, move.Y))
	is.Equal(state.Hash, snapshot.Hash)
	is.Equal(state.Board.MoveCount(), snapshot.Board.MoveCount())
}

func TestMinimaxPlayerReusesTableAcrossTurns(t *testing.T) {
	is := is.New(t)
	config := DefaultConfig()
	config.AiDepth = 2
	p, err := NewMinimaxPlayer(config)
	is.NoErr(err)

	state := midgameState(t, 15)
	_, err = p.ChooseMove(state, NewRules(testSettings(15, 5)))
	is.NoErr(err)
	is.True(p.tt.Len() > 0)

	p.ResetCache()
	is.Equal(p.tt.Len(), 0)
}
