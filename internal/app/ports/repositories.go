package ports

import (
	"context"
	"time"
)

// DispatchRecord is one journaled request outcome.
type DispatchRecord struct {
	RunID       string
	Endpoint    string
	Method      string
	Attempts    int
	Outcome     string
	CompletedAt time.Time
}

type DispatchJournal interface {
	Append(ctx context.Context, rec DispatchRecord) error
	ListByRunID(ctx context.Context, runID string, limit int) ([]DispatchRecord, error)
}
