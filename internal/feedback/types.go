package feedback

// StructuredCoachFeedback is the typed result of parsing a coach's free-text
// session notes, when those notes follow the recognized key structure. All
// sections are optional; a nil *StructuredCoachFeedback means the text did not
// contain any usable structured feedback and should be rendered as plain prose.
//
// The YAML keys are the authored (Dutch) coaching vocabulary and are part of
// the wire format — they must match what coaches and the AI coach write.
type StructuredCoachFeedback struct {
	GymfloorActies   []GymfloorAction   `json:"gymfloor_acties,omitempty" yaml:"gymfloor_acties,omitempty"`
	AnalyseEnContext []ExerciseFeedback `json:"analyse_en_context,omitempty" yaml:"analyse_en_context,omitempty"`
	MotivatieBoost   *MotivatieBoost    `json:"motivatie_boost,omitempty" yaml:"motivatie_boost,omitempty"`
}

// GymfloorAction is a short, general coaching directive not tied to a
// specific exercise.
type GymfloorAction struct {
	Actie string `json:"actie" yaml:"actie"`
}

// ExerciseFeedback is one exercise's worth of analysis and cue data, keyed by
// the exercise name as the coach authored it (which may differ in case and
// punctuation from the session's canonical name). Optional fields use the
// empty string for "not authored".
type ExerciseFeedback struct {
	Oefening                    string `json:"oefening" yaml:"oefening"`
	Stimulus                    string `json:"stimulus,omitempty" yaml:"stimulus,omitempty"`
	SetDegradatieEnVermoeidheid string `json:"set_degradatie_en_vermoeidheid,omitempty" yaml:"set_degradatie_en_vermoeidheid,omitempty"`
	ProgressieTovVorige         string `json:"progressie_tov_vorige,omitempty" yaml:"progressie_tov_vorige,omitempty"`
	CoachCueVolgendeSessie      string `json:"coach_cue_volgende_sessie,omitempty" yaml:"coach_cue_volgende_sessie,omitempty"`
	AanpakVolgendeSessie        string `json:"aanpak_volgende_sessie,omitempty" yaml:"aanpak_volgende_sessie,omitempty"`
}

// MotivatieBoost is an optional motivational blurb. Both fields are required;
// the parser drops the whole object when either is missing.
type MotivatieBoost struct {
	Stijl string `json:"stijl" yaml:"stijl"`
	Tekst string `json:"tekst" yaml:"tekst"`
}

// ValidationStatus reports how parsed feedback lines up with a session's
// actual exercise list. Recomputed on every call; never persisted.
type ValidationStatus struct {
	IsValid             bool                 `json:"is_valid"`
	HasGymfloorActies   bool                 `json:"has_gymfloor_acties"`
	GymfloorActiesCount int                  `json:"gymfloor_acties_count"`
	HasExerciseFeedback bool                 `json:"has_exercise_feedback"`
	HasMotivation       bool                 `json:"has_motivation"`
	ExerciseValidations []ExerciseValidation `json:"exercise_validations"`
}

// ExerciseValidation is the match result for a single analyse_en_context
// entry. SessionExerciseName carries the session's original (non-normalized)
// exercise name when matched.
type ExerciseValidation struct {
	ExerciseName        string `json:"exercise_name"`
	Matched             bool   `json:"matched"`
	SessionExerciseName string `json:"session_exercise_name,omitempty"`
}
