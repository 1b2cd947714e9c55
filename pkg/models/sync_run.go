package models

import (
	"time"

	"gorm.io/gorm"
)

// SyncRun records one synchronization of the mirror with the finance backend.
type SyncRun struct {
	DefaultModel
	StartedAt    time.Time `json:"startedAt" example:"2025-03-01T04:00:00Z"`
	FinishedAt   time.Time `json:"finishedAt" example:"2025-03-01T04:00:02Z"`
	Transactions int       `json:"transactions" example:"1204"` // Number of mirrored transactions
	Income       int       `json:"income" example:"38"`         // Number of mirrored income records
	Budgets      int       `json:"budgets" example:"9"`         // Number of mirrored budgets
	Error        string    `json:"error,omitempty" example:"finance backend request failed"`
}

// LastSyncRun returns the most recent synchronization.
func LastSyncRun(db *gorm.DB) (SyncRun, error) {
	var run SyncRun
	err := db.Order("started_at DESC").First(&run).Error
	return run, err
}
