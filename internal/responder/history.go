package responder

// History keeps the most recent lines up to a limit, oldest first.
type History struct {
	limit int
	items []string
}

// NewHistory creates a history holding at most limit lines.
func NewHistory(limit int) *History {
	return &History{
		limit: limit,
		items: make([]string, 0, limit),
	}
}

// Add appends line and evicts the oldest lines beyond the limit.
func (h *History) Add(line string) {
	if h.limit <= 0 {
		return
	}
	h.items = append(h.items, line)
	if overflow := len(h.items) - h.limit; overflow > 0 {
		h.items = append(h.items[:0], h.items[overflow:]...)
	}
}

// Items returns a copy of the lines, most recent last.
func (h *History) Items() []string {
	items := make([]string, len(h.items))
	copy(items, h.items)
	return items
}

// Len returns the number of lines.
func (h *History) Len() int {
	return len(h.items)
}
