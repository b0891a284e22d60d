package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/liftvault/internal/models"
	"github.com/google/uuid"
)

// HTTPClient implements DataSource by calling the LiftVault REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

// ListSessions fetches session summaries. User scoping happens server-side.
func (c *HTTPClient) ListSessions(ctx context.Context, _ int) ([]models.SessionSummary, error) {
	body, err := c.get(ctx, "/api/v1/sessions")
	if err != nil {
		return nil, err
	}
	var sessions []models.SessionSummary
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("httpclient: decode sessions: %w", err)
	}
	return sessions, nil
}

// GetSession fetches one session. The REST endpoint wraps the session in a
// detail object together with server-computed feedback state; only the
// session itself is needed here, the tools recompute the rest locally.
func (c *HTTPClient) GetSession(ctx context.Context, id uuid.UUID, _ int) (*models.Session, error) {
	body, err := c.get(ctx, "/api/v1/sessions/"+id.String())
	if err != nil {
		return nil, err
	}
	var detail struct {
		Session *models.Session `json:"session"`
	}
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("httpclient: decode session: %w", err)
	}
	if detail.Session == nil {
		return nil, fmt.Errorf("httpclient: session missing from response")
	}
	return detail.Session, nil
}

// RecentSessions filters ListSessions client-side; the list endpoint has no
// time-range parameter and session counts are small.
func (c *HTTPClient) RecentSessions(ctx context.Context, userID int, since time.Time, limit int) ([]models.SessionSummary, error) {
	all, err := c.ListSessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	var recent []models.SessionSummary
	for _, s := range all {
		if s.Date.Before(since) {
			continue
		}
		recent = append(recent, s)
		if len(recent) == limit {
			break
		}
	}
	return recent, nil
}
