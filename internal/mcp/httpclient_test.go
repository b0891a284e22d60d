package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claude/liftvault/internal/models"
	"github.com/google/uuid"
)

func testAPIServer(t *testing.T, sessions []models.SessionSummary, detail map[string]any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sessions)
	})
	mux.HandleFunc("/api/v1/sessions/", func(w http.ResponseWriter, r *http.Request) {
		if detail == nil {
			http.Error(w, `{"error":"session not found"}`, http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(detail)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestHTTPClientListSessions verifies decoding of the session list endpoint.
func TestHTTPClientListSessions(t *testing.T) {
	want := []models.SessionSummary{
		{ID: uuid.New(), UserID: 1, Name: "Push", Date: time.Now().UTC(), ExerciseCount: 4},
	}
	srv := testAPIServer(t, want, nil)

	c := NewHTTPClient(srv.URL + "/")
	got, err := c.ListSessions(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Push" || got[0].ExerciseCount != 4 {
		t.Errorf("sessions = %+v", got)
	}
}

// TestHTTPClientGetSession verifies the session is unwrapped from the detail
// response envelope.
func TestHTTPClientGetSession(t *testing.T) {
	id := uuid.New()
	detail := map[string]any{
		"session": models.Session{
			ID: id, UserID: 1, Name: "Legs",
			Exercises: []models.Exercise{{Position: 1, Name: "Squat"}},
		},
		"structured": false,
	}
	srv := testAPIServer(t, nil, detail)

	c := NewHTTPClient(srv.URL)
	got, err := c.GetSession(context.Background(), id, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Legs" || len(got.Exercises) != 1 {
		t.Errorf("session = %+v", got)
	}
}

// TestHTTPClientErrorStatus verifies non-200 responses surface as errors.
func TestHTTPClientErrorStatus(t *testing.T) {
	srv := testAPIServer(t, nil, nil)

	c := NewHTTPClient(srv.URL)
	if _, err := c.GetSession(context.Background(), uuid.New(), 1); err == nil {
		t.Error("expected error for 404 response")
	}
}

// TestHTTPClientRecentSessions verifies client-side filtering by date and
// limit.
func TestHTTPClientRecentSessions(t *testing.T) {
	now := time.Now().UTC()
	sessions := []models.SessionSummary{
		{ID: uuid.New(), Name: "today", Date: now},
		{ID: uuid.New(), Name: "last week", Date: now.AddDate(0, 0, -6)},
		{ID: uuid.New(), Name: "last month", Date: now.AddDate(0, -1, 0)},
	}
	srv := testAPIServer(t, sessions, nil)

	c := NewHTTPClient(srv.URL)
	got, err := c.RecentSessions(context.Background(), 1, now.AddDate(0, 0, -14), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("recent = %d, want 2", len(got))
	}

	got, err = c.RecentSessions(context.Background(), 1, now.AddDate(0, 0, -14), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "today" {
		t.Errorf("limited recent = %+v", got)
	}
}
