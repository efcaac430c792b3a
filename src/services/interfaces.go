// backend/src/services/interfaces.go
package services

import (
	"errors"
)

// Define common service errors
var (
	ErrLoadFailed  = errors.New("input table load failed")
	ErrReportWrite = errors.New("report write failed")
)

// RunSummary describes one completed pipeline run.
type RunSummary struct {
	RunID             string   `json:"run_id"`
	OrdersProcessed   int      `json:"orders_processed"`
	ReportsWritten    []string `json:"reports_written"`
	AffiliatesSkipped []string `json:"affiliates_skipped"` // aggregated IDs with no resolvable display name
	ReportsFailed     []string `json:"reports_failed"`     // per-affiliate write errors, isolated
}

// ReportService defines the interface for the weekly reporting pipeline:
// load and clean the three input tables, normalize currency, compute fees,
// aggregate per week, and emit one report per affiliate.
type ReportService interface {
	Run() (*RunSummary, error)
}
