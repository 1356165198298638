package storage

import (
	"context"
	"time"

	"pystats/internal/report"
)

// RunRecord is one persisted statistics run.
type RunRecord struct {
	ID        int64
	CreatedAt time.Time
	Root      string
	Report    report.Report
}

// Store defines the operations for persisting statistics runs.
type Store interface {
	// SaveRun appends one report, taken at the given analysis root, to the
	// history.
	SaveRun(ctx context.Context, root string, r *report.Report) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)

	Close() error
}
