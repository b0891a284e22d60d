package mcp

import (
	"context"
	"time"

	"github.com/claude/liftvault/internal/models"
	"github.com/claude/liftvault/internal/storage"
	"github.com/google/uuid"
)

// DataSource abstracts the session store for MCP tools. Both *storage.DB
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListSessions(ctx context.Context, userID int) ([]models.SessionSummary, error)
	GetSession(ctx context.Context, id uuid.UUID, userID int) (*models.Session, error)
	RecentSessions(ctx context.Context, userID int, since time.Time, limit int) ([]models.SessionSummary, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
