package mcp

import (
	"context"
	"strings"

	"github.com/claude/liftvault/internal/feedback"
	"github.com/claude/liftvault/internal/models"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListSessions = mcp.NewTool("list_sessions",
	mcp.WithDescription("List logged gym sessions, newest first. Returns session summaries with exercise counts and whether coach feedback is attached."),
)

var toolGetSession = mcp.NewTool("get_session",
	mcp.WithDescription("Get one session with all exercises and sets, plus the parsed coach feedback and its validation status when the feedback text is structured."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session UUID")),
)

var toolGetCoachFeedback = mcp.NewTool("get_coach_feedback",
	mcp.WithDescription("Get a session's coach feedback: the raw text plus the parsed structure when the text follows the recognized key format (gymfloor_acties, analyse_en_context, motivatie_boost)."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session UUID")),
)

var toolValidateCoachFeedback = mcp.NewTool("validate_coach_feedback",
	mcp.WithDescription("Validate coach feedback against a session's exercise list. Checks that every exercise named in analyse_en_context matches a session exercise (case- and punctuation-insensitive). Pass 'text' to validate a draft instead of the stored feedback."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session UUID")),
	mcp.WithString("text", mcp.Description("Feedback text to validate. Defaults to the session's stored feedback.")),
)

var toolFindExerciseFeedback = mcp.NewTool("find_exercise_feedback",
	mcp.WithDescription("Find the coach-feedback entry for one exercise of a session by name. Matching is case- and punctuation-insensitive."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session UUID")),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name, e.g. 'Bench Press'")),
)

// --- Tool handlers ---

func (h *handlers) sessionFromRequest(ctx context.Context, req mcp.CallToolRequest) (*models.Session, *mcp.CallToolResult) {
	idStr := strings.TrimSpace(req.GetString("session_id", ""))
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, mcp.NewToolResultError("invalid session_id: " + idStr)
	}
	session, err := h.ds.GetSession(ctx, id, UserIDFromContext(ctx))
	if err != nil {
		h.log.Error("mcp get session", "id", idStr, "error", err)
		return nil, mcp.NewToolResultError("session lookup failed: " + err.Error())
	}
	return session, nil
}

func (h *handlers) listSessions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := h.ds.ListSessions(ctx, UserIDFromContext(ctx))
	if err != nil {
		h.log.Error("mcp list_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	session, errResult := h.sessionFromRequest(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	payload := map[string]any{"session": session}
	if fb := feedback.Parse(session.CoachFeedback); fb != nil {
		payload["feedback"] = fb
		payload["validation"] = feedback.Validate(fb, session.ExerciseNames())
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCoachFeedback(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	session, errResult := h.sessionFromRequest(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	fb := feedback.Parse(session.CoachFeedback)
	payload := map[string]any{
		"raw":        session.CoachFeedback,
		"structured": fb != nil,
	}
	if fb != nil {
		payload["feedback"] = fb
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) validateCoachFeedback(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	session, errResult := h.sessionFromRequest(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	text := req.GetString("text", "")
	if text == "" {
		text = session.CoachFeedback
	}

	fb := feedback.Parse(text)
	payload := map[string]any{
		"structured": fb != nil,
		"validation": feedback.Validate(fb, session.ExerciseNames()),
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) findExerciseFeedback(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	session, errResult := h.sessionFromRequest(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	exercise := req.GetString("exercise", "")
	entry := feedback.FindExerciseFeedback(feedback.Parse(session.CoachFeedback), exercise)
	if entry == nil {
		return mcp.NewToolResultText("no feedback entry for exercise " + exercise), nil
	}

	result, err := mcp.NewToolResultJSON(entry)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
