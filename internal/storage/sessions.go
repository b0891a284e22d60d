package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftvault/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListSessions returns session summaries for a user, newest first.
func (db *DB) ListSessions(ctx context.Context, userID int) ([]models.SessionSummary, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT s.id, s.user_id, s.name, s.date, s.duration,
		 (SELECT COUNT(*) FROM session_exercises e WHERE e.session_id = s.id),
		 s.coach_feedback <> ''
		 FROM sessions s
		 WHERE s.user_id = $1
		 ORDER BY s.date DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var summaries []models.SessionSummary
	for rows.Next() {
		var s models.SessionSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Date, &s.Duration,
			&s.ExerciseCount, &s.HasCoachFeedback); err != nil {
			return nil, fmt.Errorf("scanning session summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetSession retrieves one session with its exercises and sets.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID, userID int) (*models.Session, error) {
	var s models.Session
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, date, duration, notes, coach_feedback
		 FROM sessions WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&s.ID, &s.UserID, &s.Name, &s.Date, &s.Duration, &s.Notes, &s.CoachFeedback)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}

	exRows, err := db.Pool.Query(ctx,
		`SELECT e.id, e.position, e.name, e.equipment
		 FROM session_exercises e
		 WHERE e.session_id = $1
		 ORDER BY e.position`,
		id)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer exRows.Close()

	exerciseIDs := make([]int64, 0, 8)
	for exRows.Next() {
		var exID int64
		var ex models.Exercise
		if err := exRows.Scan(&exID, &ex.Position, &ex.Name, &ex.Equipment); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		s.Exercises = append(s.Exercises, ex)
		exerciseIDs = append(exerciseIDs, exID)
	}
	if err := exRows.Err(); err != nil {
		return nil, err
	}

	setRows, err := db.Pool.Query(ctx,
		`SELECT exercise_id, set_number, weight_kg, is_bodyweight_plus, reps, rir, is_warmup
		 FROM exercise_sets
		 WHERE exercise_id = ANY($1)
		 ORDER BY exercise_id, is_warmup DESC, set_number`,
		exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("querying sets: %w", err)
	}
	defer setRows.Close()

	indexByID := make(map[int64]int, len(exerciseIDs))
	for i, exID := range exerciseIDs {
		indexByID[exID] = i
	}
	for setRows.Next() {
		var exID int64
		var set models.Set
		if err := setRows.Scan(&exID, &set.Number, &set.WeightKg, &set.IsBodyweightPlus,
			&set.Reps, &set.RIR, &set.IsWarmup); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		if i, ok := indexByID[exID]; ok {
			s.Exercises[i].Sets = append(s.Exercises[i].Sets, set)
		}
	}
	return &s, setRows.Err()
}

// SetCoachFeedback stores raw coach feedback text on a session. The text is
// opaque at this layer; parsing and validation happen on read paths.
func (db *DB) SetCoachFeedback(ctx context.Context, id uuid.UUID, userID int, text string) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE sessions SET coach_feedback = $3, updated_at = now()
		 WHERE id = $1 AND user_id = $2`,
		id, userID, text)
	if err != nil {
		return fmt.Errorf("updating coach feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertSession inserts a session with its exercises and sets in one
// transaction. Returns false without writing when a session with the same
// (user, name, date) already exists.
func (db *DB) InsertSession(ctx context.Context, s *models.Session) (bool, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	tag, err := tx.Exec(ctx,
		`INSERT INTO sessions (id, user_id, name, date, duration, notes, coach_feedback)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, name, date) DO NOTHING`,
		s.ID, s.UserID, s.Name, s.Date, s.Duration, s.Notes, s.CoachFeedback)
	if err != nil {
		return false, fmt.Errorf("inserting session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	for _, ex := range s.Exercises {
		var exID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO session_exercises (session_id, position, name, equipment)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			s.ID, ex.Position, ex.Name, ex.Equipment).Scan(&exID)
		if err != nil {
			return false, fmt.Errorf("inserting exercise %q: %w", ex.Name, err)
		}
		for _, set := range ex.Sets {
			_, err := tx.Exec(ctx,
				`INSERT INTO exercise_sets (exercise_id, set_number, weight_kg, is_bodyweight_plus, reps, rir, is_warmup)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				exID, set.Number, set.WeightKg, set.IsBodyweightPlus, set.Reps, set.RIR, set.IsWarmup)
			if err != nil {
				return false, fmt.Errorf("inserting set: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("committing session insert: %w", err)
	}
	return true, nil
}

// RecentSessions returns up to limit sessions since the given time, newest
// first. Used by the MCP recent_sessions resource.
func (db *DB) RecentSessions(ctx context.Context, userID int, since time.Time, limit int) ([]models.SessionSummary, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT s.id, s.user_id, s.name, s.date, s.duration,
		 (SELECT COUNT(*) FROM session_exercises e WHERE e.session_id = s.id),
		 s.coach_feedback <> ''
		 FROM sessions s
		 WHERE s.user_id = $1 AND s.date >= $2
		 ORDER BY s.date DESC
		 LIMIT $3`,
		userID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent sessions: %w", err)
	}
	defer rows.Close()

	var summaries []models.SessionSummary
	for rows.Next() {
		var s models.SessionSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Date, &s.Duration,
			&s.ExerciseCount, &s.HasCoachFeedback); err != nil {
			return nil, fmt.Errorf("scanning session summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
