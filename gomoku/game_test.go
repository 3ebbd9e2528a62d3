package gomoku

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func humanVsHumanSettings(size int) GameSettings {
	settings := testSettings(size, 5)
	settings.BlackType = PlayerHuman
	settings.WhiteType = PlayerHuman
	return settings
}

func TestNewGameValidatesSettings(t *testing.T) {
	settings := humanVsHumanSettings(15)
	settings.BoardSize = 0
	_, err := NewGame(settings, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNewGameValidatesConfig(t *testing.T) {
	config := DefaultConfig()
	config.AiProximityRadius = -1
	_, err := NewGame(humanVsHumanSettings(15), config)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestGameStartsNotStarted(t *testing.T) {
	game, err := NewGame(humanVsHumanSettings(15), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, StatusNotStarted, game.Status())

	_, err = game.ID().MarshalText()
	assert.NoError(t, err)

	err = game.SubmitHumanMove(Move{X: 7, Y: 7})
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestGamePlayToWin(t *testing.T) {
	game, err := NewGame(humanVsHumanSettings(15), DefaultConfig())
	require.NoError(t, err)
	game.Start()
	assert.Equal(t, StatusRunning, game.Status())
	assert.Equal(t, PlayerBlack, game.ToMove())

	blackMoves := []Move{{3, 7}, {4, 7}, {5, 7}, {6, 7}, {7, 7}}
	whiteMoves := []Move{{3, 9}, {4, 9}, {5, 9}, {6, 9}}
	for i := 0; i < 4; i++ {
		require.NoError(t, game.SubmitHumanMove(blackMoves[i]))
		require.NoError(t, game.SubmitHumanMove(whiteMoves[i]))
	}
	require.NoError(t, game.SubmitHumanMove(blackMoves[4]))

	assert.Equal(t, StatusBlackWon, game.Status())
	winner, ok := game.Status().Winner()
	assert.True(t, ok)
	assert.Equal(t, PlayerBlack, winner)

	state := game.State()
	assert.Len(t, state.WinningLine, 5)
	assert.Equal(t, Move{X: 3, Y: 7}, state.WinningLine[0])

	// No moves after the game ends.
	err = game.SubmitHumanMove(Move{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrIllegalMove)
	assert.Len(t, game.History(), 9)
}

func TestGameRejectsIllegalMoves(t *testing.T) {
	game, err := NewGame(humanVsHumanSettings(15), DefaultConfig())
	require.NoError(t, err)
	game.Start()

	require.NoError(t, game.SubmitHumanMove(Move{X: 7, Y: 7}))
	assert.ErrorIs(t, game.SubmitHumanMove(Move{X: 7, Y: 7}), ErrIllegalMove)
	assert.ErrorIs(t, game.SubmitHumanMove(Move{X: 15, Y: 0}), ErrIllegalMove)
	// A rejected move does not flip the turn.
	assert.Equal(t, PlayerWhite, game.ToMove())
	assert.Len(t, game.History(), 1)
}

func TestGameHumanVsBot(t *testing.T) {
	settings := testSettings(9, 5)
	settings.BlackType = PlayerHuman
	settings.WhiteType = PlayerBot
	settings.WhiteDifficulty = DifficultyMedium
	game, err := NewGame(settings, DefaultConfig())
	require.NoError(t, err)
	game.Start()

	assert.True(t, game.CurrentPlayerIsHuman())
	_, err = game.PlayBotTurn()
	assert.ErrorIs(t, err, ErrIllegalMove)

	require.NoError(t, game.SubmitHumanMove(Move{X: 4, Y: 4}))
	assert.False(t, game.CurrentPlayerIsHuman())
	err = game.SubmitHumanMove(Move{X: 5, Y: 5})
	assert.ErrorIs(t, err, ErrIllegalMove)

	move, err := game.PlayBotTurn()
	require.NoError(t, err)
	assert.Equal(t, CellWhite, game.State().Board.At(move.X, move.Y))
	assert.Equal(t, PlayerBlack, game.ToMove())

	history := game.History()
	require.Len(t, history, 2)
	assert.False(t, history[0].IsAi)
	assert.True(t, history[1].IsAi)
}

func TestGameBotVsBotFinishes(t *testing.T) {
	settings := testSettings(7, 4)
	settings.BlackType = PlayerBot
	settings.WhiteType = PlayerBot
	settings.BlackDifficulty = DifficultyMedium
	settings.WhiteDifficulty = DifficultyEasy
	game, err := NewGame(settings, DefaultConfig())
	require.NoError(t, err)
	game.Start()

	for i := 0; i < 7*7 && game.Status() == StatusRunning; i++ {
		_, err := game.PlayBotTurn()
		require.NoError(t, err)
	}
	assert.True(t, game.Status().Terminal())
}

func TestGameRestartSwapsOpener(t *testing.T) {
	game, err := NewGame(humanVsHumanSettings(15), DefaultConfig())
	require.NoError(t, err)
	game.Start()
	assert.Equal(t, PlayerBlack, game.ToMove())
	require.NoError(t, game.SubmitHumanMove(Move{X: 7, Y: 7}))

	game.Restart()
	assert.Equal(t, StatusRunning, game.Status())
	assert.Equal(t, PlayerWhite, game.ToMove())
	assert.Empty(t, game.History())
	assert.Equal(t, 0, game.State().Board.MoveCount())
}

func TestGameStateIsACopy(t *testing.T) {
	game, err := NewGame(humanVsHumanSettings(15), DefaultConfig())
	require.NoError(t, err)
	game.Start()

	state := game.State()
	require.NoError(t, state.Board.Place(Move{X: 0, Y: 0}, PlayerBlack))
	assert.Equal(t, CellEmpty, game.State().Board.At(0, 0))
}

func TestGameHashTracksBoard(t *testing.T) {
	game, err := NewGame(humanVsHumanSettings(15), DefaultConfig())
	require.NoError(t, err)
	game.Start()
	require.NoError(t, game.SubmitHumanMove(Move{X: 7, Y: 7}))
	require.NoError(t, game.SubmitHumanMove(Move{X: 8, Y: 8}))

	state := game.State()
	assert.Equal(t, ComputeHash(state), state.Hash)
}

func TestGameDrawOnFullBoard(t *testing.T) {
	settings := humanVsHumanSettings(3)
	settings.WinLength = 3
	game, err := NewGame(settings, DefaultConfig())
	require.NoError(t, err)
	game.Start()

	// Fill to the drawn grid used in the rules tests, alternating turns:
	//   X O X
	//   X O O
	//   O X X
	sequence := []Move{
		{0, 0}, {1, 0}, {2, 0}, {1, 1},
		{0, 1}, {2, 1}, {1, 2}, {0, 2}, {2, 2},
	}
	for _, move := range sequence {
		require.NoError(t, game.SubmitHumanMove(move))
	}
	assert.Equal(t, StatusDraw, game.Status())
}

func TestErrorIsForUnknownMinimaxDifficulty(t *testing.T) {
	settings := humanVsHumanSettings(15)
	settings.WhiteType = PlayerBot
	settings.WhiteDifficulty = Difficulty(42)
	_, err := NewGame(settings, DefaultConfig())
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
