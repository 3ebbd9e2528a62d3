package gomoku

// evalWin is the sentinel for five on the board; evalOpenFour for an
// unstoppable open four. Both dominate any weighted pattern sum.
const (
	evalWin      = 1_000_000_000.0
	evalOpenFour = 900_000.0
)

type threatClass int

const (
	classFive threatClass = iota
	classOpen4
	classClosed4
	classBroken4
	classOpen3
	classBroken3
	classClosed3
	classOpen2
	classBroken2
	numThreatClasses
)

type threatTotals [numThreatClasses]int

// Patterns over line tokens: 'M' own stone, 'O' opponent stone or border,
// '.' empty. Ordered by priority; matching is greedy, so a five is never
// also counted as its sub-patterns.
var threatPatterns = [...]struct {
	pattern string
	class   threatClass
}{
	{"MMMMM", classFive},
	{".MMMM.", classOpen4},
	{"OMMMM.", classClosed4},
	{".MMMMO", classClosed4},
	{".MMM.M.", classBroken4},
	{".M.MMM.", classBroken4},
	{".MMM.", classOpen3},
	{".MM.M.", classBroken3},
	{".M.MM.", classBroken3},
	{"OMMM.", classClosed3},
	{".MMMO", classClosed3},
	{".MM.", classOpen2},
	{".M.M.", classBroken2},
}

// EvaluateBoard statically scores the position for player: positive is
// good for player, negative good for the opponent. Five and open four map
// to sentinel values so win-in-one and must-block dominate positional
// scores.
func EvaluateBoard(board Board, player PlayerColor, weights HeuristicConfig) float64 {
	mine := countThreats(board, player)
	theirs := countThreats(board, otherPlayer(player))

	if mine[classFive] > 0 {
		return evalWin
	}
	if theirs[classFive] > 0 {
		return -evalWin
	}
	if theirs[classOpen4] > 0 {
		return -evalOpenFour
	}
	if mine[classOpen4] > 0 {
		return evalOpenFour
	}

	score := weightedThreats(mine, weights) - weightedThreats(theirs, weights)
	score += forkBonus(mine, weights) - forkBonus(theirs, weights)
	return score
}

func countThreats(board Board, player PlayerColor) threatTotals {
	var totals threatTotals
	size := board.Size()
	buf := make([]byte, 0, size+2)
	for _, start := range lineStarts(size) {
		tokens := lineTokens(board, player, start, buf)
		matchThreats(tokens, &totals)
	}
	return totals
}

type lineStart struct {
	x, y, dx, dy int
}

// lineStarts enumerates every row, column and diagonal of the board,
// each exactly once.
func lineStarts(size int) []lineStart {
	starts := make([]lineStart, 0, 6*size)
	for y := 0; y < size; y++ {
		starts = append(starts, lineStart{0, y, 1, 0})
	}
	for x := 0; x < size; x++ {
		starts = append(starts, lineStart{x, 0, 0, 1})
	}
	// Diagonals (\): top edge, then left edge below the corner.
	for x := 0; x < size; x++ {
		starts = append(starts, lineStart{x, 0, 1, 1})
	}
	for y := 1; y < size; y++ {
		starts = append(starts, lineStart{0, y, 1, 1})
	}
	// Anti-diagonals (/): left edge, then bottom edge past the corner.
	for y := 0; y < size; y++ {
		starts = append(starts, lineStart{0, y, 1, -1})
	}
	for x := 1; x < size; x++ {
		starts = append(starts, lineStart{x, size - 1, 1, -1})
	}
	return starts
}

// lineTokens renders one line as bytes with 'O' borders, so patterns that
// need an empty end can never match across the board edge.
func lineTokens(board Board, player PlayerColor, start lineStart, buf []byte) []byte {
	own := CellFromPlayer(player)
	buf = buf[:0]
	buf = append(buf, 'O')
	x, y := start.x, start.y
	for board.InBounds(x, y) {
		switch board.At(x, y) {
		case CellEmpty:
			buf = append(buf, '.')
		case own:
			buf = append(buf, 'M')
		default:
			buf = append(buf, 'O')
		}
		x += start.dx
		y += start.dy
	}
	return append(buf, 'O')
}

func matchThreats(tokens []byte, totals *threatTotals) {
	for i := 0; i < len(tokens); i++ {
		for _, entry := range threatPatterns {
			if matchAt(tokens, entry.pattern, i) {
				totals[entry.class]++
				i += len(entry.pattern) - 2
				break
			}
		}
	}
}

func matchAt(tokens []byte, pattern string, start int) bool {
	if start+len(pattern) > len(tokens) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if tokens[start+i] != pattern[i] {
			return false
		}
	}
	return true
}

func weightedThreats(t threatTotals, w HeuristicConfig) float64 {
	return float64(t[classOpen4])*w.Open4 +
		float64(t[classClosed4])*w.Closed4 +
		float64(t[classBroken4])*w.Broken4 +
		float64(t[classOpen3])*w.Open3 +
		float64(t[classBroken3])*w.Broken3 +
		float64(t[classClosed3])*w.Closed3 +
		float64(t[classOpen2])*w.Open2 +
		float64(t[classBroken2])*w.Broken2
}

func forkBonus(t threatTotals, w HeuristicConfig) float64 {
	bonus := 0.0
	if t[classOpen3] >= 2 {
		bonus += w.ForkOpen3
	}
	if t[classClosed4]+t[classBroken4] >= 2 {
		bonus += w.ForkFourPlus
	}
	return bonus
}
