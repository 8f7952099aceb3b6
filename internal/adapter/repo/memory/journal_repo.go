package memory

import (
	"context"
	"sync"

	"evader/internal/app/ports"
)

// JournalRepo keeps dispatch records in memory. Default journal when
// no database DSN is configured.
type JournalRepo struct {
	mu   sync.RWMutex
	recs []ports.DispatchRecord
}

func NewJournalRepo() *JournalRepo {
	return &JournalRepo{}
}

func (r *JournalRepo) Append(_ context.Context, rec ports.DispatchRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	return nil
}

func (r *JournalRepo) ListByRunID(_ context.Context, runID string, limit int) ([]ports.DispatchRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ports.DispatchRecord, 0, limit)
	for _, rec := range r.recs {
		if rec.RunID != runID {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
