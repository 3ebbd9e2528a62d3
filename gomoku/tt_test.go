package gomoku

import (
	"testing"

	"github.com/matryer/is"
)

func TestTTStoreProbeRoundTrip(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(1<<10, 4)
	tt.Store(0xdeadbeef, 3, 42.0, TTExact, Move{X: 7, Y: 7})

	entry, ok := tt.Probe(0xdeadbeef)
	is.True(ok)
	is.Equal(entry.Depth, 3)
	is.Equal(entry.Score, 42.0)
	is.Equal(entry.Flag, TTExact)
	is.Equal(entry.Best, Move{X: 7, Y: 7})
}

func TestTTProbeMiss(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(1<<10, 4)
	_, ok := tt.Probe(0x1234)
	is.True(!ok)
}

func TestTTDeeperEntryReplacesSameKey(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(1<<10, 4)
	tt.Store(0xabc, 2, 10.0, TTLower, Move{X: 1, Y: 1})
	tt.Store(0xabc, 5, 20.0, TTExact, Move{X: 2, Y: 2})

	entry, ok := tt.Probe(0xabc)
	is.True(ok)
	is.Equal(entry.Depth, 5)
	is.Equal(entry.Best, Move{X: 2, Y: 2})
}

func TestTTShallowerEntryDoesNotReplaceSameKey(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(1<<10, 4)
	tt.Store(0xabc, 5, 20.0, TTExact, Move{X: 2, Y: 2})
	tt.Store(0xabc, 2, 10.0, TTLower, Move{X: 1, Y: 1})

	entry, ok := tt.Probe(0xabc)
	is.True(ok)
	is.Equal(entry.Depth, 5)
	is.Equal(entry.Score, 20.0)
}

func TestTTEvictsShallowestWhenBucketsFull(t *testing.T) {
	is := is.New(t)
	// Size 1 so every key lands in the same bucket group.
	tt := NewTranspositionTable(1, 2)
	tt.Store(1, 4, 1.0, TTExact, Move{X: 1, Y: 0})
	tt.Store(2, 2, 2.0, TTExact, Move{X: 2, Y: 0})
	tt.Store(3, 6, 3.0, TTExact, Move{X: 3, Y: 0})

	_, ok := tt.Probe(2)
	is.True(!ok)
	entry, ok := tt.Probe(1)
	is.True(ok)
	is.Equal(entry.Depth, 4)
	entry, ok = tt.Probe(3)
	is.True(ok)
	is.Equal(entry.Depth, 6)
}

func TestTTNilIsSafe(t *testing.T) {
	is := is.New(t)
	var tt *TranspositionTable
	tt.Store(1, 1, 1.0, TTExact, Move{})
	_, ok := tt.Probe(1)
	is.True(!ok)
	is.Equal(tt.Len(), 0)
	is.Equal(tt.Capacity(), 0)
}

func TestTTClear(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(1<<8, 2)
	tt.Store(7, 3, 9.0, TTExact, Move{X: 4, Y: 4})
	is.Equal(tt.Len(), 1)
	tt.Clear()
	is.Equal(tt.Len(), 0)
	_, ok := tt.Probe(7)
	is.True(!ok)
}

func TestTTCapacityRoundsToPowerOfTwo(t *testing.T) {
	is := is.New(t)
	tt := NewTranspositionTable(1000, 2)
	is.Equal(tt.Capacity(), 1024*2)
}
