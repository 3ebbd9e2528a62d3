package gomoku

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Game is one session: settings, rules, the live state, both players and
// the move history. It is not safe for concurrent use.
type Game struct {
	id       uuid.UUID
	settings GameSettings
	config   Config
	rules    Rules
	state    GameState
	history  MoveHistory

	blackPlayer Player
	whitePlayer Player

	turnStart time.Time
}

// NewGame validates settings and config, builds both players and returns
// a game in the not-started state. Call Start to begin play.
func NewGame(settings GameSettings, config Config) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	black, err := newSidePlayer(settings.BlackType, settings.BlackDifficulty, config)
	if err != nil {
		return nil, err
	}
	white, err := newSidePlayer(settings.WhiteType, settings.WhiteDifficulty, config)
	if err != nil {
		return nil, err
	}
	g := &Game{
		id:          uuid.New(),
		settings:    settings,
		config:      config,
		rules:       NewRules(settings),
		state:       DefaultGameState(settings),
		blackPlayer: black,
		whitePlayer: white,
	}
	return g, nil
}

func newSidePlayer(playerType PlayerType, difficulty Difficulty, config Config) (Player, error) {
	if playerType == PlayerHuman {
		return NewHumanPlayer(), nil
	}
	return NewBotPlayer(difficulty, config)
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Status() GameStatus {
	return g.state.Status
}

func (g *Game) ToMove() PlayerColor {
	return g.state.ToMove
}

// State returns a deep copy; the live state only changes through
// SubmitHumanMove and PlayBotTurn.
func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() []HistoryEntry {
	return g.history.All()
}

func (g *Game) Start() {
	g.state.Reset(g.settings)
	g.state.Status = StatusRunning
	g.history.Clear()
	g.turnStart = time.Now()
	log.Info().
		Str("game", g.id.String()).
		Int("boardSize", g.settings.BoardSize).
		Int("winLength", g.settings.WinLength).
		Str("toMove", g.state.ToMove.String()).
		Msg("game started")
}

// Restart begins a fresh game with the starting player swapped, keeping
// the same players and settings.
func (g *Game) Restart() {
	g.settings.BlackStarts = !g.settings.BlackStarts
	g.Start()
}

func (g *Game) currentPlayer() Player {
	if g.state.ToMove == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) CurrentPlayerIsHuman() bool {
	return g.currentPlayer().IsHuman()
}

// SubmitHumanMove plays a move on behalf of the human whose turn it is.
func (g *Game) SubmitHumanMove(move Move) error {
	player := g.currentPlayer()
	if !player.IsHuman() {
		return fmt.Errorf("%w: it is the bot's turn", ErrIllegalMove)
	}
	return g.applyMove(move, false, 0)
}

// PlayBotTurn asks the bot whose turn it is for a move and commits it.
// A bot proposing an illegal move is a bug in the bot, not a user error,
// so it is reported as such.
func (g *Game) PlayBotTurn() (Move, error) {
	player := g.currentPlayer()
	if player.IsHuman() {
		return Move{}, fmt.Errorf("%w: it is the human's turn", ErrIllegalMove)
	}
	if g.state.Status != StatusRunning {
		return Move{}, illegalMove(Move{}, "game is not running")
	}
	start := time.Now()
	move, err := player.ChooseMove(g.state.Clone(), g.rules)
	if err != nil {
		return Move{}, err
	}
	if err := g.applyMove(move, true, g.botDepth()); err != nil {
		return Move{}, fmt.Errorf("bot produced illegal move %s: %w", move, err)
	}
	log.Debug().
		Str("game", g.id.String()).
		Str("move", move.String()).
		Dur("took", time.Since(start)).
		Msg("bot moved")
	return move, nil
}

func (g *Game) botDepth() int {
	difficulty := g.settings.BlackDifficulty
	if g.state.ToMove == PlayerWhite {
		difficulty = g.settings.WhiteDifficulty
	}
	if difficulty == DifficultyHard {
		return g.config.AiDepth
	}
	return 0
}

// applyMove commits one move: legality check, board update, incremental
// hash update, history push and status transition.
func (g *Game) applyMove(move Move, isAi bool, depth int) error {
	if g.state.Status != StatusRunning {
		return illegalMove(move, "game is not running")
	}
	if ok, reason := g.rules.IsLegalDefault(g.state, move); !ok {
		return illegalMove(move, reason)
	}
	player := g.state.ToMove
	if err := g.state.Board.Place(move, player); err != nil {
		return err
	}
	UpdateHashAfterMove(&g.state, move, player)

	now := time.Now()
	g.history.Push(HistoryEntry{
		Move:      move,
		Player:    player,
		ElapsedMs: now.Sub(g.turnStart).Milliseconds(),
		IsAi:      isAi,
		Depth:     depth,
	})
	g.turnStart = now

	g.state.Status = g.rules.Result(g.state)
	switch {
	case g.state.Status == wonStatus(player):
		if line, ok := g.rules.FindWinningLine(g.state.Board, move); ok {
			g.state.WinningLine = line
		}
		log.Info().
			Str("game", g.id.String()).
			Str("winner", player.String()).
			Str("move", move.String()).
			Int("moves", g.history.Size()).
			Msg("game won")
	case g.state.Status == StatusDraw:
		log.Info().
			Str("game", g.id.String()).
			Int("moves", g.history.Size()).
			Msg("game drawn")
	default:
		g.state.ToMove = otherPlayer(player)
	}
	return nil
}
