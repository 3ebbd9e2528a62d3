package gomoku

// Cell is the state of a single intersection.
type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

// Board is a square grid of cells. All mutation goes through Place and
// Undo; Undo unwinds placements strictly in reverse order, which is what
// search backtracking needs and what makes an undo restore the move
// counter and last-move pointer exactly.
type Board struct {
	size   int
	cells  []Cell
	placed []Move
}

func NewBoard(size int) Board {
	b := Board{}
	b.Reset(size)
	return b
}

func (b *Board) Reset(size int) {
	b.size = size
	b.cells = make([]Cell, size*size)
	b.placed = b.placed[:0]
}

func (b Board) Size() int {
	return b.size
}

func (b Board) At(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

func (b Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.At(x, y) == CellEmpty
}

// MoveCount is the number of stones on the board.
func (b Board) MoveCount() int {
	return len(b.placed)
}

// LastMove reports the most recent placement, if any.
func (b Board) LastMove() (Move, bool) {
	if len(b.placed) == 0 {
		return Move{}, false
	}
	return b.placed[len(b.placed)-1], true
}

// Place puts a stone for player on move. It is the only way a cell
// becomes occupied.
func (b *Board) Place(move Move, player PlayerColor) error {
	if !move.IsValid(b.size) {
		return illegalMove(move, "out of bounds")
	}
	idx := b.index(move.X, move.Y)
	if b.cells[idx] != CellEmpty {
		return illegalMove(move, "occupied")
	}
	b.cells[idx] = CellFromPlayer(player)
	b.placed = append(b.placed, move)
	return nil
}

// Undo removes the stone at move. Only the most recent placement can be
// undone, so the counter and last-move pointer roll back exactly.
func (b *Board) Undo(move Move) error {
	if !move.IsValid(b.size) {
		return illegalMove(move, "out of bounds")
	}
	if b.cells[b.index(move.X, move.Y)] == CellEmpty {
		return illegalMove(move, "cell already empty")
	}
	if last, ok := b.LastMove(); !ok || !last.Equals(move) {
		return illegalMove(move, "not the last placement")
	}
	b.cells[b.index(move.X, move.Y)] = CellEmpty
	b.placed = b.placed[:len(b.placed)-1]
	return nil
}

// LegalMoves lists every empty cell in (y, x) order. Search never calls
// this; it is for the naive strategies and the frontend.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, b.CountEmpty())
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.At(x, y) == CellEmpty {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	return moves
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) IsFull() bool {
	return b.CountEmpty() == 0
}

func (b Board) Clone() Board {
	clone := Board{size: b.size}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	clone.placed = append([]Move(nil), b.placed...)
	return clone
}

func (b Board) index(x, y int) int {
	return y*b.size + x
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}
