package gomoku

import "sync"

// ZobristTable holds the random keys for one board size. Tables are
// seeded deterministically so hashes are reproducible across runs and
// usable as test fixtures.
type ZobristTable struct {
	size  int
	cells []uint64
	side  uint64
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[int]*ZobristTable
}

var zobristTables = &zobristStore{tables: make(map[int]*ZobristTable)}

func GetZobrist(size int) *ZobristTable {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	if table, ok := zobristTables.tables[size]; ok {
		return table
	}
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ uint64(size)}
	table := &ZobristTable{size: size, cells: make([]uint64, size*size*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	zobristTables.tables[size] = table
	return table
}

func (z *ZobristTable) stone(x, y int, player PlayerColor) uint64 {
	idx := (y*z.size + x) * 2
	if player == PlayerWhite {
		idx++
	}
	return z.cells[idx]
}

// ComputeHash builds the hash of a state from scratch.
func ComputeHash(state GameState) uint64 {
	z := GetZobrist(state.Board.Size())
	var hash uint64
	size := state.Board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch state.Board.At(x, y) {
			case CellBlack:
				hash ^= z.stone(x, y, PlayerBlack)
			case CellWhite:
				hash ^= z.stone(x, y, PlayerWhite)
			}
		}
	}
	if state.ToMove == PlayerWhite {
		hash ^= z.side
	}
	return hash
}

// UpdateHashAfterMove toggles the stone key for the placement and the
// side-to-move key. Call it after the board mutation and turn flip; it is
// its own inverse, so the same call undoes a move's hash.
func UpdateHashAfterMove(state *GameState, move Move, player PlayerColor) {
	z := GetZobrist(state.Board.Size())
	state.Hash ^= z.stone(move.X, move.Y, player)
	state.Hash ^= z.side
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
