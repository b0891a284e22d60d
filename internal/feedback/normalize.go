package feedback

import "strings"

// NormalizeExerciseName collapses casing, spacing, and punctuation variants of
// an exercise name to a single comparison key: lowercase, ASCII letters and
// digits only. "Easy Bar Curl", "easy-bar-curl" and "EASY BAR CURL" all map
// to "easybarcurl". Total over all inputs and idempotent.
func NormalizeExerciseName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
