package gomoku

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

// winScore is the terminal sentinel. It sits above every evaluator value,
// and the ply adjustment makes the search prefer faster wins and slower
// losses.
const winScore = 2_000_000_000.0

const (
	pvBoost     = 1e12
	killerBoost = 8000.0
)

// SearchSettings parameterizes one SelectMove call. Depth and
// ProximityRadius are the two mandatory approximations; a zero candidate
// cap means unlimited, a nil TT disables the transposition table.
type SearchSettings struct {
	Depth             int
	TimeBudgetMs      int
	ProximityRadius   int
	MaxCandidatesRoot int
	MaxCandidatesMid  int
	MaxCandidatesDeep int
	EnableKillerMoves bool
	Weights           HeuristicConfig
	TT                *TranspositionTable
	ShouldStop        func() bool
	Stats             *SearchStats
	LogStats          bool
}

func SearchSettingsFromConfig(config Config) SearchSettings {
	return SearchSettings{
		Depth:             config.AiDepth,
		TimeBudgetMs:      config.AiTimeBudgetMs,
		ProximityRadius:   config.AiProximityRadius,
		MaxCandidatesRoot: config.AiMaxCandidatesRoot,
		MaxCandidatesMid:  config.AiMaxCandidatesMid,
		MaxCandidatesDeep: config.AiMaxCandidatesDeep,
		EnableKillerMoves: config.AiEnableKillerMoves,
		Weights:           config.Heuristics,
		LogStats:          config.AiLogSearchStats,
	}
}

type SearchStats struct {
	Start          time.Time
	Nodes          int64
	Cutoffs        int64
	TTProbes       int64
	TTHits         int64
	TTStores       int64
	CompletedDepth int
	DepthDurations []time.Duration
}

type SearchResult struct {
	Move  Move
	Score float64
	Depth int
}

type searcher struct {
	state       *GameState
	rules       Rules
	settings    SearchSettings
	gen         MoveGenerator
	deadline    time.Time
	hasDeadline bool
	killers     [][2]Move
	aborted     bool
}

// SelectMove runs an iterative-deepening alpha-beta search for the side
// to move and returns its move. The state is mutated during the search
// through strict apply/undo pairs and is bit-identical to its input when
// SelectMove returns. Ties break on candidate order, which is
// deterministic, so equal inputs always produce equal moves.
func SelectMove(state *GameState, rules Rules, settings SearchSettings) (SearchResult, error) {
	if settings.Depth <= 0 {
		return SearchResult{}, invalidConfig("depth", settings.Depth)
	}
	if settings.ProximityRadius <= 0 {
		return SearchResult{}, invalidConfig("proximity_radius", settings.ProximityRadius)
	}
	if state.Status.Terminal() {
		return SearchResult{}, fmt.Errorf("select move: game already finished (%s)", state.Status)
	}
	if state.Board.IsFull() {
		return SearchResult{}, fmt.Errorf("select move: no legal moves")
	}
	if state.Hash == 0 {
		state.Hash = ComputeHash(*state)
	}

	stats := settings.Stats
	if stats == nil {
		stats = &SearchStats{}
		settings.Stats = stats
	}
	if stats.Start.IsZero() {
		stats.Start = time.Now()
	}

	s := &searcher{
		state:    state,
		rules:    rules,
		settings: settings,
		gen:      NewMoveGenerator(settings.ProximityRadius),
		killers:  newKillerTable(settings.Depth + 2),
	}
	if settings.TimeBudgetMs > 0 {
		s.deadline = stats.Start.Add(time.Duration(settings.TimeBudgetMs) * time.Millisecond)
		s.hasDeadline = true
	}

	var result SearchResult
	haveResult := false
	for depth := 1; depth <= settings.Depth; depth++ {
		if haveResult && (s.timedOut() || s.shouldStop()) {
			break
		}
		depthStart := time.Now()
		s.aborted = false
		move, score, completed := s.searchRoot(depth)
		if !completed {
			break
		}
		result = SearchResult{Move: move, Score: score, Depth: depth}
		haveResult = true
		stats.CompletedDepth = depth
		stats.DepthDurations = append(stats.DepthDurations, time.Since(depthStart))
		if score > evalWin {
			// Forced win found; deeper search cannot improve it.
			break
		}
	}
	if !haveResult {
		// Interrupted before depth 1 finished: fall back to the best
		// ordered candidate.
		candidates := s.candidatesFor(0, nil)
		if len(candidates) == 0 {
			return SearchResult{}, fmt.Errorf("select move: no candidates")
		}
		result = SearchResult{Move: candidates[0], Score: 0, Depth: 0}
	}
	if settings.LogStats {
		logSearchStats(stats, settings, result)
	}
	return result, nil
}

func (s *searcher) searchRoot(depth int) (Move, float64, bool) {
	alpha := math.Inf(-1)
	beta := math.Inf(1)
	candidates := s.candidatesFor(0, s.rootHint())
	if len(candidates) == 0 {
		return Move{}, 0, false
	}
	bestMove := candidates[0]
	bestScore := math.Inf(-1)
	for _, move := range candidates {
		if s.timedOut() || s.shouldStop() {
			s.aborted = true
			break
		}
		value, ok := s.searchMove(move, depth, 0, alpha, beta)
		if !ok {
			continue
		}
		if value > bestScore {
			bestScore = value
			bestMove = move
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	if s.aborted || math.IsInf(bestScore, -1) {
		return bestMove, bestScore, false
	}
	s.storeTT(depth, bestScore, TTExact, bestMove)
	return bestMove, bestScore, true
}

// searchMove applies move for the side to move, scores the resulting
// position and undoes the move. Every exit path undoes, including
// terminal shortcuts, so the caller's state is untouched.
func (s *searcher) searchMove(move Move, depth, ply int, alpha, beta float64) (float64, bool) {
	player := s.state.ToMove
	if !s.apply(move, player) {
		return 0, false
	}
	var value float64
	switch {
	case s.rules.IsWin(s.state.Board, move):
		value = winScore - float64(ply+1)
	case s.state.Board.IsFull():
		value = 0
	default:
		value = -s.negamax(depth-1, ply+1, -beta, -alpha)
	}
	s.undo(move, player)
	return value, true
}

func (s *searcher) negamax(depth, ply int, alpha, beta float64) float64 {
	if s.settings.Stats != nil {
		s.settings.Stats.Nodes++
	}
	if s.timedOut() || s.shouldStop() {
		s.aborted = true
		return EvaluateBoard(s.state.Board, s.state.ToMove, s.settings.Weights)
	}
	if depth <= 0 {
		return EvaluateBoard(s.state.Board, s.state.ToMove, s.settings.Weights)
	}

	alphaOrig := alpha
	key := s.state.Hash
	var pv *Move
	if s.settings.TT != nil {
		if s.settings.Stats != nil {
			s.settings.Stats.TTProbes++
		}
		if entry, ok := s.settings.TT.Probe(key); ok {
			if s.settings.Stats != nil {
				s.settings.Stats.TTHits++
			}
			if entry.Best.IsValid(s.state.Board.Size()) {
				hint := entry.Best
				pv = &hint
			}
			if entry.Depth >= depth {
				switch entry.Flag {
				case TTExact:
					return entry.Score
				case TTLower:
					if entry.Score > alpha {
						alpha = entry.Score
					}
				case TTUpper:
					if entry.Score < beta {
						beta = entry.Score
					}
				}
				if alpha >= beta {
					if s.settings.Stats != nil {
						s.settings.Stats.Cutoffs++
					}
					return entry.Score
				}
			}
		}
	}

	candidates := s.candidatesFor(ply, pv)
	if len(candidates) == 0 {
		return 0
	}
	best := math.Inf(-1)
	bestMove := candidates[0]
	for _, move := range candidates {
		value, ok := s.searchMove(move, depth, ply, alpha, beta)
		if !ok {
			continue
		}
		if value > best {
			best = value
			bestMove = move
		}
		if s.aborted {
			break
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			if s.settings.Stats != nil {
				s.settings.Stats.Cutoffs++
			}
			if s.settings.EnableKillerMoves {
				s.recordKiller(ply, move)
			}
			break
		}
	}
	if s.aborted || math.IsInf(best, -1) {
		return best
	}
	flag := TTExact
	if best <= alphaOrig {
		flag = TTUpper
	} else if best >= beta {
		flag = TTLower
	}
	s.storeTT(depth, best, flag, bestMove)
	return best
}

// candidatesFor enumerates and orders the moves worth searching at this
// ply. A win-in-one restricts the set to the winning moves; failing
// that, an opponent win-in-one restricts it to the blocking cells.
// Otherwise proximity candidates are ordered by a one-ply heuristic
// score, principal variation and killers first, and capped by depth from
// root.
func (s *searcher) candidatesFor(ply int, pv *Move) []Move {
	player := s.state.ToMove
	if wins := s.winningMoves(player); len(wins) > 0 {
		return wins
	}
	if blocks := s.winningMoves(otherPlayer(player)); len(blocks) > 0 {
		return s.orderCandidates(blocks, ply, pv, 0)
	}
	return s.orderCandidates(s.gen.Candidates(s.state.Board), ply, pv, s.candidateLimit(ply))
}

func (s *searcher) winningMoves(player PlayerColor) []Move {
	var wins []Move
	for _, move := range s.gen.Candidates(s.state.Board) {
		if s.isWinningMove(move, player) {
			wins = append(wins, move)
		}
	}
	return wins
}

func (s *searcher) isWinningMove(move Move, player PlayerColor) bool {
	if s.state.Board.Place(move, player) != nil {
		return false
	}
	win := s.rules.IsWin(s.state.Board, move)
	if err := s.state.Board.Undo(move); err != nil {
		panic(fmt.Sprintf("search: undo failed after probe at %s: %v", move, err))
	}
	return win
}

func (s *searcher) orderCandidates(moves []Move, ply int, pv *Move, limit int) []Move {
	player := s.state.ToMove
	type scoredMove struct {
		move  Move
		score float64
	}
	scored := make([]scoredMove, 0, len(moves))
	for _, move := range moves {
		score := s.quickScore(move, player)
		if pv != nil && pv.Equals(move) {
			score += pvBoost
		}
		if s.settings.EnableKillerMoves && s.isKiller(ply, move) {
			score += killerBoost
		}
		scored = append(scored, scoredMove{move: move, score: score})
	}
	// Stable sort keeps the generator's (y, x) order for equal scores,
	// which is what makes tie-breaking deterministic.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	ordered := make([]Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

// quickScore is the one-ply ordering heuristic: evaluate the position
// right after the move, from the mover's perspective.
func (s *searcher) quickScore(move Move, player PlayerColor) float64 {
	if s.state.Board.Place(move, player) != nil {
		return math.Inf(-1)
	}
	score := EvaluateBoard(s.state.Board, player, s.settings.Weights)
	if err := s.state.Board.Undo(move); err != nil {
		panic(fmt.Sprintf("search: undo failed after probe at %s: %v", move, err))
	}
	return score
}

func (s *searcher) candidateLimit(ply int) int {
	switch {
	case ply == 0:
		return s.settings.MaxCandidatesRoot
	case ply <= 2:
		return s.settings.MaxCandidatesMid
	default:
		return s.settings.MaxCandidatesDeep
	}
}

func (s *searcher) rootHint() *Move {
	if s.settings.TT == nil {
		return nil
	}
	entry, ok := s.settings.TT.Probe(s.state.Hash)
	if !ok || !entry.Best.IsValid(s.state.Board.Size()) {
		return nil
	}
	hint := entry.Best
	return &hint
}

// newKillerTable fills every slot with an off-board move so an unset
// slot can never match a real candidate.
func newKillerTable(plies int) [][2]Move {
	killers := make([][2]Move, plies)
	for i := range killers {
		killers[i][0] = Move{X: -1, Y: -1}
		killers[i][1] = Move{X: -1, Y: -1}
	}
	return killers
}

func (s *searcher) isKiller(ply int, move Move) bool {
	if ply >= len(s.killers) {
		return false
	}
	return s.killers[ply][0].Equals(move) || s.killers[ply][1].Equals(move)
}

func (s *searcher) recordKiller(ply int, move Move) {
	if ply >= len(s.killers) {
		return
	}
	if s.killers[ply][0].Equals(move) {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = move
}

func (s *searcher) apply(move Move, player PlayerColor) bool {
	if s.state.Board.Place(move, player) != nil {
		return false
	}
	s.state.ToMove = otherPlayer(player)
	UpdateHashAfterMove(s.state, move, player)
	return true
}

func (s *searcher) undo(move Move, player PlayerColor) {
	if err := s.state.Board.Undo(move); err != nil {
		panic(fmt.Sprintf("search: undo failed at %s: %v", move, err))
	}
	s.state.ToMove = player
	// The hash toggle is its own inverse.
	UpdateHashAfterMove(s.state, move, player)
}

func (s *searcher) timedOut() bool {
	return s.hasDeadline && time.Now().After(s.deadline)
}

func (s *searcher) shouldStop() bool {
	return s.settings.ShouldStop != nil && s.settings.ShouldStop()
}

func (s *searcher) storeTT(depth int, score float64, flag TTFlag, best Move) {
	if s.settings.TT == nil {
		return
	}
	s.settings.TT.Store(s.state.Hash, depth, score, flag, best)
	if s.settings.Stats != nil {
		s.settings.Stats.TTStores++
	}
}

func logSearchStats(stats *SearchStats, settings SearchSettings, result SearchResult) {
	elapsed := time.Since(stats.Start)
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	log.Info().
		Int("depth", result.Depth).
		Float64("score", result.Score).
		Str("move", result.Move.String()).
		Int64("nodes", stats.Nodes).
		Float64("nps", nps).
		Int64("cutoffs", stats.Cutoffs).
		Int64("tt_probes", stats.TTProbes).
		Int64("tt_hits", stats.TTHits).
		Int64("tt_stores", stats.TTStores).
		Dur("elapsed", elapsed).
		Msg("search complete")
}
