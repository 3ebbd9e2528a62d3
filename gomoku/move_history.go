package gomoku

// HistoryEntry records one committed move plus how it came to be.
type HistoryEntry struct {
	Move      Move        `json:"move"`
	Player    PlayerColor `json:"player"`
	ElapsedMs int64       `json:"elapsedMs"`
	IsAi      bool        `json:"isAi"`
	Depth     int         `json:"depth,omitempty"`
}

type MoveHistory struct {
	entries []HistoryEntry
}

func (h *MoveHistory) Clear() {
	h.entries = h.entries[:0]
}

func (h *MoveHistory) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h *MoveHistory) Size() int {
	return len(h.entries)
}

func (h *MoveHistory) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// All returns a copy so callers cannot mutate the backing slice.
func (h *MoveHistory) All() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
