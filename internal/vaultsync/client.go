package vaultsync

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// IngestResult mirrors the server's vault ingest response without importing
// the ingest package (which would pull in pgx and other server-side
// dependencies).
type IngestResult struct {
	SessionID     string `json:"session_id"`
	Inserted      bool   `json:"inserted"`
	SessionName   string `json:"session_name"`
	ExerciseCount int    `json:"exercise_count"`
	SetCount      int    `json:"set_count"`
}

// Client sends vault notes to the LiftVault server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the server's ingest API.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SendNote posts one session note body to the ingest endpoint.
func (c *Client) SendNote(note io.Reader) (*IngestResult, error) {
	body, err := io.ReadAll(note)
	if err != nil {
		return nil, fmt.Errorf("reading note: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.serverURL+"/api/v1/ingest/vault", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "text/markdown")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting note: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ingest failed (status %d): %s", resp.StatusCode, respBody)
	}

	var result IngestResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding ingest result: %w", err)
	}
	return &result, nil
}
