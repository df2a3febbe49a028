package util

// Truncate shortens s to at most limit characters, marking the cut with an
// ellipsis.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
