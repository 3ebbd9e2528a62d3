package gomoku

// MoveGenerator restricts the search space to cells near existing stones.
// The radius bound is what keeps the branching factor tractable on boards
// where full-width search is hopeless.
type MoveGenerator struct {
	radius int
}

func NewMoveGenerator(radius int) MoveGenerator {
	return MoveGenerator{radius: radius}
}

func (g MoveGenerator) Radius() int {
	return g.radius
}

// Candidates returns every empty cell within Chebyshev distance radius of
// an occupied cell, deduplicated, in deterministic (y, x) order. On an
// empty board the center cell is the only candidate.
func (g MoveGenerator) Candidates(board Board) []Move {
	size := board.Size()
	if board.MoveCount() == 0 {
		center := size / 2
		return []Move{{X: center, Y: center}}
	}
	candidates := make([]Move, 0, 64)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.At(x, y) != CellEmpty {
				continue
			}
			if g.nearStone(board, x, y) {
				candidates = append(candidates, Move{X: x, Y: y})
			}
		}
	}
	return candidates
}

func (g MoveGenerator) nearStone(board Board, x, y int) bool {
	for dy := -g.radius; dy <= g.radius; dy++ {
		for dx := -g.radius; dx <= g.radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			ny := y + dy
			if board.InBounds(nx, ny) && board.At(nx, ny) != CellEmpty {
				return true
			}
		}
	}
	return false
}
