package gomoku

type TTFlag uint8

const (
	TTExact TTFlag = iota
	TTLower
	TTUpper
)

type TTEntry struct {
	Key   uint64
	Depth int
	Score float64
	Flag  TTFlag
	Best  Move
	Valid bool
}

// TranspositionTable is a fixed-size bucketed table keyed by zobrist
// hash. Replacement prefers deeper entries, then exact bounds. Search is
// single-threaded, so there is no locking.
type TranspositionTable struct {
	mask    uint64
	buckets int
	entries []TTEntry
}

func NewTranspositionTable(size int, buckets int) *TranspositionTable {
	if buckets <= 0 {
		buckets = 2
	}
	n := nextPowerOfTwo(uint64(max(size, 1)))
	return &TranspositionTable{
		mask:    n - 1,
		buckets: buckets,
		entries: make([]TTEntry, int(n)*buckets),
	}
}

func (tt *TranspositionTable) Probe(key uint64) (TTEntry, bool) {
	if tt == nil {
		return TTEntry{}, false
	}
	start := tt.bucketIndex(key)
	for i := 0; i < tt.buckets; i++ {
		entry := tt.entries[start+i]
		if entry.Valid && entry.Key == key {
			return entry, true
		}
	}
	return TTEntry{}, false
}

func (tt *TranspositionTable) Store(key uint64, depth int, score float64, flag TTFlag, best Move) {
	if tt == nil {
		return
	}
	entry := TTEntry{Key: key, Depth: depth, Score: score, Flag: flag, Best: best, Valid: true}
	start := tt.bucketIndex(key)

	// Same key: keep the deeper of the two, exact beating bounds at
	// equal depth.
	for i := 0; i < tt.buckets; i++ {
		idx := start + i
		existing := tt.entries[idx]
		if !existing.Valid || existing.Key != key {
			continue
		}
		if depth > existing.Depth || (depth == existing.Depth && (flag == TTExact || existing.Flag != TTExact)) {
			tt.entries[idx] = entry
		}
		return
	}

	for i := 0; i < tt.buckets; i++ {
		idx := start + i
		if !tt.entries[idx].Valid {
			tt.entries[idx] = entry
			return
		}
	}

	// All buckets full: evict the shallowest.
	victim := start
	for i := 1; i < tt.buckets; i++ {
		if tt.entries[start+i].Depth < tt.entries[victim].Depth {
			victim = start + i
		}
	}
	if depth >= tt.entries[victim].Depth {
		tt.entries[victim] = entry
	}
}

func (tt *TranspositionTable) Len() int {
	if tt == nil {
		return 0
	}
	count := 0
	for i := range tt.entries {
		if tt.entries[i].Valid {
			count++
		}
	}
	return count
}

func (tt *TranspositionTable) Capacity() int {
	if tt == nil {
		return 0
	}
	return len(tt.entries)
}

func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

func (tt *TranspositionTable) bucketIndex(key uint64) int {
	return int(key&tt.mask) * tt.buckets
}

func nextPowerOfTwo(v uint64) uint64 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return v
}
