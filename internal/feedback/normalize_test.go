package feedback

import "testing"

// TestNormalizeVariants verifies that casing, spacing, and punctuation
// variants of the same exercise name collapse to one key.
func TestNormalizeVariants(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Easy Bar Curl", "easybarcurl"},
		{"easy-bar-curl", "easybarcurl"},
		{"EASY BAR CURL", "easybarcurl"},
		{"easy_bar_curl", "easybarcurl"},
		{"Bench Press", "benchpress"},
		{"Hyperextensions on Roman Chair", "hyperextensionsonromanchair"},
		{"21s (EZ-bar)", "21sezbar"},
		{"", ""},
		{"!!!", ""},
		{"Côté élevé", "ctlev"},
		{"squat 💪", "squat"},
	}
	for _, tt := range tests {
		if got := NormalizeExerciseName(tt.in); got != tt.want {
			t.Errorf("NormalizeExerciseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestNormalizeIdempotent verifies normalize(normalize(x)) == normalize(x).
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Easy Bar Curl", "easy-bar-curl", "", "12-3 Tempo Squat!", "ümläut çurl"}
	for _, in := range inputs {
		once := NormalizeExerciseName(in)
		twice := NormalizeExerciseName(once)
		if once != twice {
			t.Errorf("normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
