package deskcalc

import "strings"

// DefaultHistorySize is the number of calculations a session remembers when no
// HistorySize option is given.
const DefaultHistorySize = 5

// History is a fixed-capacity list of completed calculations, oldest first.
// When it is full, pushing an entry evicts the oldest one.
type History struct {
	entries []string
	max     int
}

// NewHistory creates a history holding at most max entries. If max is not
// positive, DefaultHistorySize is used.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{
		entries: make([]string, 0, max),
		max:     max,
	}
}

// Push appends an entry, evicting the oldest one if the history is full.
func (h *History) Push(entry string) {
	if len(h.entries) >= h.max {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, entry)
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Cap returns the maximum number of entries.
func (h *History) Cap() int {
	return h.max
}

// Render joins the entries with newlines, oldest first.
func (h *History) Render() string {
	return strings.Join(h.entries, "\n")
}
