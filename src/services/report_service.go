// backend/src/services/report_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/username/affiliatereports/backend/src/logger"
	"github.com/username/affiliatereports/backend/src/models"
	"github.com/username/affiliatereports/backend/src/parsers"
	"github.com/username/affiliatereports/backend/src/processors"
)

type reportServiceImpl struct {
	affiliateRatesPath string
	currencyRatesPath  string
	ordersPath         string
	outputDir          string
	strictRateLookup   bool

	loader processors.OrderLoader
	weekly processors.WeeklyProcessor
}

func NewReportService(affiliateRatesPath, currencyRatesPath, ordersPath, outputDir string, strictRateLookup bool) ReportService {
	return &reportServiceImpl{
		affiliateRatesPath: affiliateRatesPath,
		currencyRatesPath:  currencyRatesPath,
		ordersPath:         ordersPath,
		outputDir:          outputDir,
		strictRateLookup:   strictRateLookup,
		loader:             processors.NewOrderLoader(),
		weekly:             processors.NewWeeklyProcessor(),
	}
}

// Run executes the whole batch: any load failure aborts before output exists;
// per-affiliate emission problems are logged and isolated.
func (s *reportServiceImpl) Run() (*RunSummary, error) {
	runID := uuid.NewString()
	l := logger.L.With("runID", runID)

	l.Info("Reporting pipeline starting")

	affiliateRates, err := parsers.ParseAffiliateRates(s.affiliateRatesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	currencyRates, err := parsers.ParseCurrencyRates(s.currencyRatesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	rawOrders, err := parsers.ParseOrders(s.ordersPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	orders := s.loader.Process(rawOrders)
	l.Info("Orders loaded", "raw", len(rawOrders), "afterDedup", len(orders))

	orders, err = processors.NewCurrencyProcessor(currencyRates, s.strictRateLookup).Process(orders)
	if err != nil {
		return nil, fmt.Errorf("currency normalization: %w", err)
	}

	orders = processors.NewFeeProcessor(affiliateRates).Process(orders)

	aggregates := s.weekly.Process(orders)
	l.Info("Weekly aggregation complete", "rows", len(aggregates))

	summary := &RunSummary{RunID: runID, OrdersProcessed: len(orders)}
	names := affiliateNames(affiliateRates)

	for _, affiliateID := range distinctAffiliates(aggregates) {
		name, ok := names[affiliateID]
		if !ok {
			l.Warn("No data found for affiliate ID, skipping report", "affiliateID", affiliateID)
			summary.AffiliatesSkipped = append(summary.AffiliatesSkipped, affiliateID)
			continue
		}

		rows := aggregatesFor(aggregates, affiliateID)
		path, err := WriteAffiliateReport(s.outputDir, name, rows)
		if err != nil {
			l.Error("Failed to write affiliate report",
				"affiliateID", affiliateID, "affiliateName", name, "error",
				fmt.Errorf("%w: %v", ErrReportWrite, err))
			summary.ReportsFailed = append(summary.ReportsFailed, affiliateID)
			continue
		}

		l.Info("Affiliate report written", "affiliateID", affiliateID, "path", path, "weeks", len(rows))
		summary.ReportsWritten = append(summary.ReportsWritten, path)
	}

	l.Info("Reporting pipeline finished",
		"ordersProcessed", summary.OrdersProcessed,
		"reportsWritten", len(summary.ReportsWritten),
		"affiliatesSkipped", len(summary.AffiliatesSkipped),
		"reportsFailed", len(summary.ReportsFailed))

	return summary, nil
}

// affiliateNames maps affiliate IDs to display names. The first schedule row
// for an ID wins, matching how the source system names report files.
func affiliateNames(rates []models.AffiliateRate) map[string]string {
	names := make(map[string]string, len(rates))
	for _, r := range rates {
		if _, ok := names[r.AffiliateID]; !ok {
			names[r.AffiliateID] = r.AffiliateName
		}
	}
	return names
}

// distinctAffiliates returns affiliate IDs in the (sorted) order the
// aggregates carry them.
func distinctAffiliates(aggregates []models.WeeklyAggregate) []string {
	var ids []string
	for _, agg := range aggregates {
		if len(ids) == 0 || ids[len(ids)-1] != agg.AffiliateID {
			ids = append(ids, agg.AffiliateID)
		}
	}
	return ids
}

func aggregatesFor(aggregates []models.WeeklyAggregate, affiliateID string) []models.WeeklyAggregate {
	var rows []models.WeeklyAggregate
	for _, agg := range aggregates {
		if agg.AffiliateID == affiliateID {
			rows = append(rows, agg)
		}
	}
	return rows
}
