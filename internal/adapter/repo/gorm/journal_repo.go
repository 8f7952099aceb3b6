package gormrepo

import (
	"context"

	"evader/internal/adapter/repo/gorm/model"
	"evader/internal/app/ports"

	"gorm.io/gorm"
)

type JournalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepo {
	return JournalRepo{db: db}
}

// Migrate creates the journal table if it does not exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.DispatchEvent{})
}

func (r JournalRepo) Append(ctx context.Context, rec ports.DispatchRecord) error {
	row := model.DispatchEvent{
		RunID:       rec.RunID,
		Endpoint:    rec.Endpoint,
		Method:      rec.Method,
		Attempts:    rec.Attempts,
		Outcome:     rec.Outcome,
		CompletedAt: rec.CompletedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r JournalRepo) ListByRunID(ctx context.Context, runID string, limit int) ([]ports.DispatchRecord, error) {
	q := r.db.WithContext(ctx).
		Where(&model.DispatchEvent{RunID: runID}).
		Order("id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []model.DispatchEvent
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.DispatchRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.DispatchRecord{
			RunID:       row.RunID,
			Endpoint:    row.Endpoint,
			Method:      row.Method,
			Attempts:    row.Attempts,
			Outcome:     row.Outcome,
			CompletedAt: row.CompletedAt,
		})
	}
	return out, nil
}
