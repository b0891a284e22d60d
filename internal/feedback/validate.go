package feedback

// Validate checks every analyse_en_context entry against a session's actual
// exercise list and reports presence flags for the other sections. Matching
// is exact on normalized names; when a session contains duplicate normalized
// names the first one in session order wins. Pure and deterministic — safe to
// call on every keystroke of a feedback editor.
func Validate(fb *StructuredCoachFeedback, sessionExercises []string) ValidationStatus {
	status := ValidationStatus{
		IsValid:             true,
		ExerciseValidations: []ExerciseValidation{},
	}
	if fb == nil {
		return status
	}

	status.HasGymfloorActies = len(fb.GymfloorActies) > 0
	status.GymfloorActiesCount = len(fb.GymfloorActies)
	status.HasExerciseFeedback = len(fb.AnalyseEnContext) > 0
	status.HasMotivation = fb.MotivatieBoost != nil

	normalized := make([]string, len(sessionExercises))
	for i, name := range sessionExercises {
		normalized[i] = NormalizeExerciseName(name)
	}

	for _, entry := range fb.AnalyseEnContext {
		result := ExerciseValidation{ExerciseName: entry.Oefening}
		key := NormalizeExerciseName(entry.Oefening)
		for i, n := range normalized {
			if n == key {
				result.Matched = true
				result.SessionExerciseName = sessionExercises[i]
				break
			}
		}
		if !result.Matched {
			status.IsValid = false
		}
		status.ExerciseValidations = append(status.ExerciseValidations, result)
	}

	return status
}

// FindExerciseFeedback returns the first analyse_en_context entry whose
// normalized name matches exerciseName, or nil. Called while rendering a
// single exercise's logging view.
func FindExerciseFeedback(fb *StructuredCoachFeedback, exerciseName string) *ExerciseFeedback {
	if fb == nil {
		return nil
	}
	key := NormalizeExerciseName(exerciseName)
	for i := range fb.AnalyseEnContext {
		if NormalizeExerciseName(fb.AnalyseEnContext[i].Oefening) == key {
			return &fb.AnalyseEnContext[i]
		}
	}
	return nil
}
