package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a logged gym session parsed from a vault note.
type Session struct {
	ID            uuid.UUID  `json:"id"`
	UserID        int        `json:"user_id"`
	Name          string     `json:"name"`
	Date          time.Time  `json:"date"`
	Duration      string     `json:"duration,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CoachFeedback string     `json:"coach_feedback,omitempty"`
	Exercises     []Exercise `json:"exercises"`
}

// Exercise is one exercise within a session, in logging order.
type Exercise struct {
	Position  int    `json:"position"`
	Name      string `json:"name"`
	Equipment string `json:"equipment,omitempty"`
	Sets      []Set  `json:"sets"`
}

// Set is a single logged set. WeightKg is the added weight when
// IsBodyweightPlus is set.
type Set struct {
	Number           int     `json:"number"`
	WeightKg         float64 `json:"weight_kg"`
	IsBodyweightPlus bool    `json:"is_bodyweight_plus,omitempty"`
	Reps             int     `json:"reps"`
	RIR              float64 `json:"rir"`
	IsWarmup         bool    `json:"is_warmup,omitempty"`
}

// ExerciseNames returns the session's exercise names in session order.
// This list is what coach feedback gets validated against.
func (s *Session) ExerciseNames() []string {
	names := make([]string, len(s.Exercises))
	for i, ex := range s.Exercises {
		names[i] = ex.Name
	}
	return names
}

// SessionSummary is the list-view projection of a session: no sets, just
// identity and counts.
type SessionSummary struct {
	ID               uuid.UUID `json:"id"`
	UserID           int       `json:"user_id"`
	Name             string    `json:"name"`
	Date             time.Time `json:"date"`
	Duration         string    `json:"duration,omitempty"`
	ExerciseCount    int       `json:"exercise_count"`
	HasCoachFeedback bool      `json:"has_coach_feedback"`
}
