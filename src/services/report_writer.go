// backend/src/services/report_writer.go
package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/username/affiliatereports/backend/src/models"
	"github.com/xuri/excelize/v2"
)

const reportSheetName = "Weekly Aggregation"

// reportHeaders are the stable, human-readable column names of the emitted
// report, in output order.
var reportHeaders = []string{
	"Affiliate ID",
	"Week Start Date",
	"Number of Orders",
	"Total Order Amount (EUR)",
	"Total Processing Fee",
	"Total Refund Fee",
	"Total Chargeback Fee",
}

// WriteAffiliateReport writes one affiliate's weekly rows to
// <outputDir>/<affiliateName>.xlsx (single sheet, no index column). The
// workbook is written to a temp file first and renamed into place, so a
// failed write never leaves a truncated file discoverable as valid output.
func WriteAffiliateReport(outputDir, affiliateName string, rows []models.WeeklyAggregate) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheetName); err != nil {
		return "", fmt.Errorf("failed to name report sheet: %w", err)
	}

	headerRow := make([]interface{}, len(reportHeaders))
	for i, h := range reportHeaders {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(reportSheetName, "A1", &headerRow); err != nil {
		return "", fmt.Errorf("failed to write report header: %w", err)
	}

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		values := []interface{}{
			row.AffiliateID,
			row.WeekStart.Format("2006-01-02"),
			row.OrderCount,
			row.TotalOrderAmount.InexactFloat64(),
			row.TotalProcessingFee.InexactFloat64(),
			row.TotalRefundFee.InexactFloat64(),
			row.TotalChargebackFee.InexactFloat64(),
		}
		if err := f.SetSheetRow(reportSheetName, cellRef, &values); err != nil {
			return "", fmt.Errorf("failed to write report row %d: %w", i+1, err)
		}
	}

	finalPath := filepath.Join(outputDir, sanitizeFileName(affiliateName)+".xlsx")

	tmp, err := os.CreateTemp(outputDir, ".report-*.xlsx")
	if err != nil {
		return "", fmt.Errorf("failed to create temp report file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write report workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close temp report file: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to move report into place: %w", err)
	}

	return finalPath, nil
}

// sanitizeFileName keeps the affiliate display name usable as a file name.
func sanitizeFileName(name string) string {
	cleaned := strings.TrimSpace(name)
	for _, c := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		cleaned = strings.ReplaceAll(cleaned, c, "_")
	}
	if cleaned == "" {
		cleaned = "unnamed-affiliate"
	}
	return cleaned
}
