package responder

const emptyPatternLogReply = "I'm not sure how to respond. Could you please tell me more?"

// Random picks an index in [0, n).
type Random interface {
	IntN(n int) int
}

// UserStyleFallback is the low-confidence reply that replays a random earlier user line verbatim.
// The lines are not filtered, so anything the user typed can be echoed back.
func UserStyleFallback(patterns *History, random Random) string {
	if patterns.Len() == 0 {
		return emptyPatternLogReply
	}
	items := patterns.Items()
	return items[random.IntN(len(items))]
}
