package feedback

import "testing"

// TestValidateMatching verifies normalized matching against session
// exercises, including the mismatch and vacuous-validity cases.
func TestValidateMatching(t *testing.T) {
	fb := &StructuredCoachFeedback{
		AnalyseEnContext: []ExerciseFeedback{{Oefening: "bench press"}},
	}

	status := Validate(fb, []string{"Bench Press", "Squat"})
	if !status.IsValid {
		t.Error("IsValid = false, want true")
	}
	if len(status.ExerciseValidations) != 1 {
		t.Fatalf("validations = %d, want 1", len(status.ExerciseValidations))
	}
	v := status.ExerciseValidations[0]
	if !v.Matched || v.SessionExerciseName != "Bench Press" {
		t.Errorf("validation = %+v, want matched Bench Press", v)
	}
	if v.ExerciseName != "bench press" {
		t.Errorf("ExerciseName = %q, want authored name preserved", v.ExerciseName)
	}

	// Same feedback, session without the exercise
	status = Validate(fb, []string{"Squat", "Deadlift"})
	if status.IsValid {
		t.Error("IsValid = true, want false")
	}
	v = status.ExerciseValidations[0]
	if v.Matched || v.SessionExerciseName != "" {
		t.Errorf("validation = %+v, want unmatched", v)
	}
}

// TestValidateVacuous verifies feedback without exercise entries is always
// valid, and that presence flags still reflect the other sections.
func TestValidateVacuous(t *testing.T) {
	fb := &StructuredCoachFeedback{
		GymfloorActies: []GymfloorAction{{Actie: "Brace"}, {Actie: "Breathe"}},
		MotivatieBoost: &MotivatieBoost{Stijl: "calm", Tekst: "Nice work"},
	}
	status := Validate(fb, []string{"Squat"})
	if !status.IsValid {
		t.Error("IsValid = false, want vacuous true")
	}
	if len(status.ExerciseValidations) != 0 {
		t.Errorf("validations = %d, want 0", len(status.ExerciseValidations))
	}
	if status.HasExerciseFeedback {
		t.Error("HasExerciseFeedback = true, want false")
	}
	if !status.HasGymfloorActies || status.GymfloorActiesCount != 2 {
		t.Errorf("gymfloor flags = %v/%d, want true/2", status.HasGymfloorActies, status.GymfloorActiesCount)
	}
	if !status.HasMotivation {
		t.Error("HasMotivation = false, want true")
	}

	// Nil feedback is the "no structured feedback" case — also vacuously valid.
	status = Validate(nil, []string{"Squat"})
	if !status.IsValid || len(status.ExerciseValidations) != 0 {
		t.Errorf("nil feedback status = %+v, want valid/empty", status)
	}
}

// TestValidateMixedOrder verifies one result per entry in authored order when
// some entries match and some do not.
func TestValidateMixedOrder(t *testing.T) {
	fb := &StructuredCoachFeedback{
		AnalyseEnContext: []ExerciseFeedback{
			{Oefening: "Hack Squats"},
			{Oefening: "Leg Curl"},
			{Oefening: "standing-calf-raises"},
		},
	}
	status := Validate(fb, []string{"Hack Squats", "Standing Calf Raises"})
	if status.IsValid {
		t.Error("IsValid = true, want false (Leg Curl unmatched)")
	}
	want := []ExerciseValidation{
		{ExerciseName: "Hack Squats", Matched: true, SessionExerciseName: "Hack Squats"},
		{ExerciseName: "Leg Curl", Matched: false},
		{ExerciseName: "standing-calf-raises", Matched: true, SessionExerciseName: "Standing Calf Raises"},
	}
	if len(status.ExerciseValidations) != len(want) {
		t.Fatalf("validations = %d, want %d", len(status.ExerciseValidations), len(want))
	}
	for i, w := range want {
		if status.ExerciseValidations[i] != w {
			t.Errorf("validation[%d] = %+v, want %+v", i, status.ExerciseValidations[i], w)
		}
	}
}

// TestValidateFirstMatchWins verifies duplicate normalized session names
// attribute the match to the first occurrence in session order.
func TestValidateFirstMatchWins(t *testing.T) {
	fb := &StructuredCoachFeedback{
		AnalyseEnContext: []ExerciseFeedback{{Oefening: "bench press"}},
	}
	status := Validate(fb, []string{"Bench Press", "bench-press"})
	v := status.ExerciseValidations[0]
	if v.SessionExerciseName != "Bench Press" {
		t.Errorf("SessionExerciseName = %q, want first occurrence %q", v.SessionExerciseName, "Bench Press")
	}
}

// TestFindExerciseFeedback verifies the point lookup used per-exercise
// during rendering.
func TestFindExerciseFeedback(t *testing.T) {
	fb := &StructuredCoachFeedback{
		AnalyseEnContext: []ExerciseFeedback{
			{Oefening: "bench press", Stimulus: "solid"},
			{Oefening: "Bench Press", Stimulus: "duplicate, never returned"},
			{Oefening: "Squat", Stimulus: "deep"},
		},
	}

	got := FindExerciseFeedback(fb, "BENCH PRESS")
	if got == nil || got.Stimulus != "solid" {
		t.Errorf("lookup = %+v, want first bench entry", got)
	}

	if got := FindExerciseFeedback(fb, "Deadlift"); got != nil {
		t.Errorf("lookup Deadlift = %+v, want nil", got)
	}
	if got := FindExerciseFeedback(nil, "Squat"); got != nil {
		t.Errorf("lookup on nil feedback = %+v, want nil", got)
	}
	if got := FindExerciseFeedback(&StructuredCoachFeedback{}, "Squat"); got != nil {
		t.Errorf("lookup on empty feedback = %+v, want nil", got)
	}
}
