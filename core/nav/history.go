package nav

import "time"

// HistoryEntry records the last focus seen for a view. Entries are coalesced
// per view key: a new transition in an already-recorded view replaces the
// old entry rather than stacking.
type HistoryEntry struct {
	ViewKey string
	FocusID string
	At      time.Time
}

// History keeps per-view focus memory for back navigation, bounded to a
// configured length (oldest entries drop first).
type History struct {
	entries []HistoryEntry // oldest first
	limit   int
}

const DefaultHistoryLimit = 50

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record coalesces (view, focus) into the history as the most recent entry.
func (h *History) Record(view, focus string, at time.Time) {
	if view == "" || focus == "" {
		return
	}
	for i, e := range h.entries {
		if e.ViewKey == view {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, HistoryEntry{ViewKey: view, FocusID: focus, At: at})
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Peek returns the entry for view without removing it.
func (h *History) Peek(view string) (HistoryEntry, bool) {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].ViewKey == view {
			return h.entries[i], true
		}
	}
	return HistoryEntry{}, false
}

// PopLatestOther removes and returns the most recent entry whose view is not
// current. This is the "where does back go" query.
func (h *History) PopLatestOther(current string) (HistoryEntry, bool) {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].ViewKey != current {
			e := h.entries[i]
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return e, true
		}
	}
	return HistoryEntry{}, false
}

// Entries returns a copy ordered most recent first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, 0, len(h.entries))
	for i := len(h.entries) - 1; i >= 0; i-- {
		out = append(out, h.entries[i])
	}
	return out
}

func (h *History) Len() int { return len(h.entries) }
