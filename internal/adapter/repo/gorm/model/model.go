package model

import "time"

// DispatchEvent is one journaled request outcome.
type DispatchEvent struct {
	ID          uint   `gorm:"primaryKey"`
	RunID       string `gorm:"index;size:64"`
	Endpoint    string `gorm:"size:32"`
	Method      string `gorm:"size:8"`
	Attempts    int
	Outcome     string `gorm:"size:16"`
	CompletedAt time.Time
	CreatedAt   time.Time
}

func (DispatchEvent) TableName() string { return "dispatch_events" }
