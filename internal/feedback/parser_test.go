package feedback

import "testing"

const wellFormedFeedback = `
gymfloor_acties:
  - actie: "Focus on bracing"
  - actie: "Shorter rest between warmups"
analyse_en_context:
  - oefening: "Squat"
    stimulus: "Good depth"
    coach_cue_volgende_sessie: "\"Drive through heels\""
  - oefening: "Bench Press"
    progressie_tov_vorige: "+2.5kg over last week"
    aanpak_volgende_sessie: "Same load, aim for 8"
motivatie_boost:
  stijl: "direct"
  tekst: "Keep pushing"
`

// TestParseWellFormed is the primary happy-path test: all three sections
// present, quote artifacts on the coach cue cleaned up.
func TestParseWellFormed(t *testing.T) {
	fb := Parse(wellFormedFeedback)
	if fb == nil {
		t.Fatal("Parse returned nil for well-formed input")
	}

	if len(fb.GymfloorActies) != 2 {
		t.Fatalf("gymfloor actions = %d, want 2", len(fb.GymfloorActies))
	}
	if fb.GymfloorActies[0].Actie != "Focus on bracing" {
		t.Errorf("actie[0] = %q", fb.GymfloorActies[0].Actie)
	}

	if len(fb.AnalyseEnContext) != 2 {
		t.Fatalf("exercise entries = %d, want 2", len(fb.AnalyseEnContext))
	}
	squat := fb.AnalyseEnContext[0]
	if squat.Oefening != "Squat" {
		t.Errorf("oefening = %q, want Squat", squat.Oefening)
	}
	if squat.Stimulus != "Good depth" {
		t.Errorf("stimulus = %q", squat.Stimulus)
	}
	if squat.CoachCueVolgendeSessie != "Drive through heels" {
		t.Errorf("cue = %q, want quotes stripped", squat.CoachCueVolgendeSessie)
	}
	bench := fb.AnalyseEnContext[1]
	if bench.ProgressieTovVorige != "+2.5kg over last week" {
		t.Errorf("progressie = %q", bench.ProgressieTovVorige)
	}
	if bench.Stimulus != "" {
		t.Errorf("stimulus = %q, want absent", bench.Stimulus)
	}

	if fb.MotivatieBoost == nil {
		t.Fatal("motivatie_boost missing")
	}
	if fb.MotivatieBoost.Stijl != "direct" || fb.MotivatieBoost.Tekst != "Keep pushing" {
		t.Errorf("motivatie_boost = %+v", fb.MotivatieBoost)
	}
}

// TestParseUnusableInput covers the inputs that must collapse to nil: empty,
// whitespace, broken YAML, non-mapping roots, and structurally-empty docs.
func TestParseUnusableInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  "},
		{"broken yaml", "not: [valid, yaml: broken"},
		{"plain prose", "great session today, keep the hips lower next time"},
		{"scalar root", "42"},
		{"unknown keys only", "wat: 1\nhuh:\n  - ok"},
		{"sections wrong shape", "gymfloor_acties: not-a-list\nanalyse_en_context: 7\nmotivatie_boost: [a, b]"},
		{"all entries filtered", "gymfloor_acties:\n  - actie: \"\"\n  - 12\nanalyse_en_context:\n  - stimulus: \"no name\""},
		{"partial motivation", "motivatie_boost:\n  stijl: direct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if fb := Parse(tt.in); fb != nil {
				t.Errorf("Parse(%q) = %+v, want nil", tt.in, fb)
			}
		})
	}
}

// TestParseEntryFiltering verifies that malformed entries are dropped
// individually while their siblings survive.
func TestParseEntryFiltering(t *testing.T) {
	in := `
gymfloor_acties:
  - actie: "Keep moving"
  - "just a string"
  - actie: ""
  - actie: [nested, list]
  - 99
analyse_en_context:
  - oefening: "Deadlift"
  - stimulus: "orphaned note"
  - oefening: ""
    stimulus: "empty name"
`
	fb := Parse(in)
	if fb == nil {
		t.Fatal("Parse returned nil")
	}
	if len(fb.GymfloorActies) != 1 || fb.GymfloorActies[0].Actie != "Keep moving" {
		t.Errorf("gymfloor actions = %+v, want single 'Keep moving'", fb.GymfloorActies)
	}
	if len(fb.AnalyseEnContext) != 1 || fb.AnalyseEnContext[0].Oefening != "Deadlift" {
		t.Errorf("exercise entries = %+v, want single Deadlift", fb.AnalyseEnContext)
	}
}

// TestParseScalarCoercion verifies numbers and booleans stringify while
// nested structures coerce to absent.
func TestParseScalarCoercion(t *testing.T) {
	in := `
gymfloor_acties:
  - actie: 45
  - actie: 2.5
  - actie: true
analyse_en_context:
  - oefening: 21
    stimulus: {nested: map}
    progressie_tov_vorige: false
`
	fb := Parse(in)
	if fb == nil {
		t.Fatal("Parse returned nil")
	}
	wantActies := []string{"45", "2.5", "true"}
	if len(fb.GymfloorActies) != len(wantActies) {
		t.Fatalf("gymfloor actions = %d, want %d", len(fb.GymfloorActies), len(wantActies))
	}
	for i, want := range wantActies {
		if fb.GymfloorActies[i].Actie != want {
			t.Errorf("actie[%d] = %q, want %q", i, fb.GymfloorActies[i].Actie, want)
		}
	}
	entry := fb.AnalyseEnContext[0]
	if entry.Oefening != "21" {
		t.Errorf("oefening = %q, want \"21\"", entry.Oefening)
	}
	if entry.Stimulus != "" {
		t.Errorf("stimulus = %q, want absent (nested map)", entry.Stimulus)
	}
	if entry.ProgressieTovVorige != "false" {
		t.Errorf("progressie = %q, want \"false\"", entry.ProgressieTovVorige)
	}
}

// TestParseCueCleanup verifies the quote-artifact cleanup on coach cues.
func TestParseCueCleanup(t *testing.T) {
	tests := []struct {
		name string
		cue  string
		want string
	}{
		{"escaped and wrapped", `"\"Drive through heels\""`, "Drive through heels"},
		{"single wrapping quotes", `'"Chest up"'`, "Chest up"},
		{"no artifacts", `'Chest up'`, "Chest up"},
		{"inner quote preserved", `'say "brace" out loud'`, `say "brace" out loud`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := "analyse_en_context:\n  - oefening: Squat\n    coach_cue_volgende_sessie: " + tt.cue + "\n"
			fb := Parse(in)
			if fb == nil {
				t.Fatal("Parse returned nil")
			}
			if got := fb.AnalyseEnContext[0].CoachCueVolgendeSessie; got != tt.want {
				t.Errorf("cue = %q, want %q", got, tt.want)
			}
		})
	}
}
