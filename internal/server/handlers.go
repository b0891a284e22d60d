package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/claude/liftvault/internal/feedback"
	"github.com/claude/liftvault/internal/models"
	"github.com/claude/liftvault/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// defaultUserID scopes all data until multi-user auth lands. The tsnet layer
// already restricts who can reach the API.
const defaultUserID = 1

// sessionDetail is a session plus the live parse/validation of its coach
// feedback. Structured is false when the feedback text (if any) did not parse;
// the UI then renders the raw text as markdown.
type sessionDetail struct {
	Session    *models.Session                   `json:"session"`
	Structured bool                              `json:"structured"`
	Feedback   *feedback.StructuredCoachFeedback `json:"feedback,omitempty"`
	Validation *feedback.ValidationStatus        `json:"validation,omitempty"`
}

func (s *Server) handleVaultIngest(w http.ResponseWriter, r *http.Request) {
	result, err := s.vault.Ingest(r.Context(), defaultUserID, r.Body)
	if err != nil {
		s.log.Error("vault ingest error", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.store.ListSessions(r.Context(), defaultUserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if sessions == nil {
		sessions = []models.SessionSummary{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, buildSessionDetail(session))
}

type putFeedbackRequest struct {
	Text string `json:"text"`
}

func (s *Server) handlePutFeedback(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req putFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := s.store.SetCoachFeedback(r.Context(), session.ID, defaultUserID, req.Text); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	session.CoachFeedback = req.Text
	writeJSON(w, http.StatusOK, buildSessionDetail(session))
}

type previewRequest struct {
	Text      string   `json:"text"`
	Exercises []string `json:"exercises"`
}

type previewResponse struct {
	Structured bool                              `json:"structured"`
	Feedback   *feedback.StructuredCoachFeedback `json:"feedback,omitempty"`
	Validation feedback.ValidationStatus         `json:"validation"`
}

// handlePreviewFeedback is the live-editing path: parse and validate feedback
// text against an exercise list without persisting anything. Called on every
// keystroke of the plugin's feedback editor, so it never rejects input — an
// unparseable text just reports structured: false.
func (s *Server) handlePreviewFeedback(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	fb := feedback.Parse(req.Text)
	writeJSON(w, http.StatusOK, previewResponse{
		Structured: fb != nil,
		Feedback:   fb,
		Validation: feedback.Validate(fb, req.Exercises),
	})
}

func (s *Server) handleExerciseFeedback(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise name"})
		return
	}

	entry := feedback.FindExerciseFeedback(feedback.Parse(session.CoachFeedback), name)
	if entry == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no feedback for exercise"})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// sessionFromRequest loads the session addressed by the {id} URL parameter,
// writing the error response itself when the ID is bad or unknown.
func (s *Server) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return nil, false
	}
	session, err := s.store.GetSession(r.Context(), id, defaultUserID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return nil, false
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return nil, false
	}
	return session, true
}

func buildSessionDetail(session *models.Session) sessionDetail {
	detail := sessionDetail{Session: session}
	fb := feedback.Parse(session.CoachFeedback)
	if fb != nil {
		status := feedback.Validate(fb, session.ExerciseNames())
		detail.Structured = true
		detail.Feedback = fb
		detail.Validation = &status
	}
	return detail
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
