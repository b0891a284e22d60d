package vault

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/claude/liftvault/internal/feedback"
	"github.com/claude/liftvault/internal/storage"
	"github.com/google/uuid"
)

// Result summarizes what one ingested note produced.
type Result struct {
	SessionID          uuid.UUID `json:"session_id"`
	Inserted           bool      `json:"inserted"`
	SessionName        string    `json:"session_name"`
	ExerciseCount      int       `json:"exercise_count"`
	SetCount           int       `json:"set_count"`
	HasCoachFeedback   bool      `json:"has_coach_feedback"`
	FeedbackStructured bool      `json:"feedback_structured"`
}

// Provider ingests vault session notes into storage.
type Provider struct {
	db  *storage.DB
	log *slog.Logger
}

// NewProvider creates a vault ingest provider.
func NewProvider(db *storage.DB, log *slog.Logger) *Provider {
	return &Provider{db: db, log: log}
}

// Ingest parses one session note and inserts it for the given user.
// Re-ingesting an unchanged note is a no-op (duplicate by user/name/date).
func (p *Provider) Ingest(ctx context.Context, userID int, r io.Reader) (*Result, error) {
	session, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing session note: %w", err)
	}
	session.UserID = userID

	inserted, err := p.db.InsertSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}

	setCount := 0
	for _, ex := range session.Exercises {
		setCount += len(ex.Sets)
	}
	result := &Result{
		SessionID:        session.ID,
		Inserted:         inserted,
		SessionName:      session.Name,
		ExerciseCount:    len(session.Exercises),
		SetCount:         setCount,
		HasCoachFeedback: session.CoachFeedback != "",
		// Informational only: whether the attached feedback parses as
		// structured. The raw text is stored either way.
		FeedbackStructured: feedback.Parse(session.CoachFeedback) != nil,
	}

	p.log.Info("ingested session note",
		"session", session.Name,
		"date", session.Date.Format("2006-01-02"),
		"inserted", inserted,
		"exercises", result.ExerciseCount,
		"sets", result.SetCount,
	)
	return result, nil
}
