package parsers

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a single-sheet xlsx fixture on disk.
func writeWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name for row %d: %v", i+1, err)
		}
		if err := f.SetSheetRow("Sheet1", cellRef, &row); err != nil {
			t.Fatalf("writing fixture row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving fixture %s: %v", name, err)
	}
	return path
}

func TestParseAffiliateRates(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "rates.xlsx", [][]interface{}{
		{"Affiliate ID", "Affiliate Name", "Processing Rate", "Chargeback Fee", "Refund Fee"},
		{"AFF-1", "Affiliate A", 0.02, 15, 5},
		{"AFF-1", "Affiliate A", 0.03, 12, 4},
		{"AFF-2", "Affiliate B", 0.05, 10, 2},
	})

	rates, err := ParseAffiliateRates(path)
	if err != nil {
		t.Fatalf("ParseAffiliateRates() error = %v", err)
	}
	if len(rates) != 3 {
		t.Fatalf("expected 3 schedule rows (duplicates preserved in order), got %d", len(rates))
	}
	if rates[0].AffiliateID != "AFF-1" || rates[2].AffiliateID != "AFF-2" {
		t.Errorf("rows out of source order: %+v", rates)
	}
	if rates[1].ProcessingRate.String() != "0.03" {
		t.Errorf("ProcessingRate = %s, want 0.03", rates[1].ProcessingRate)
	}
}

func TestParseAffiliateRates_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "rates.xlsx", [][]interface{}{
		{"Affiliate ID", "Affiliate Name", "Processing Rate"},
		{"AFF-1", "Affiliate A", 0.02},
	})

	_, err := ParseAffiliateRates(path)
	if err == nil {
		t.Fatal("expected error for missing columns, got nil")
	}
	if !strings.Contains(err.Error(), "Chargeback Fee") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestParseCurrencyRates(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "currency.xlsx", [][]interface{}{
		{"date", "USD", "GBP"},
		{"2024-01-01", 0.92, 1.15},
		{"not-a-date", 0.9, 1.1}, // skipped with a log line, not fatal
		{"2024-01-02", 0.9, 1.1},
	})

	rates, err := ParseCurrencyRates(path)
	if err != nil {
		t.Fatalf("ParseCurrencyRates() error = %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("expected 2 rate rows after skipping the bad one, got %d", len(rates))
	}
	if rates[0].Date.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("first rate date = %s", rates[0].Date.Format("2006-01-02"))
	}
	if rates[0].USD.String() != "0.92" {
		t.Errorf("USD rate = %s, want 0.92", rates[0].USD)
	}
}

func TestParseCurrencyRates_MissingFile(t *testing.T) {
	_, err := ParseCurrencyRates(filepath.Join(t.TempDir(), "does-not-exist.xlsx"))
	if err == nil {
		t.Fatal("expected error for missing workbook, got nil")
	}
}

func TestParseOrders(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "orders.xlsx", [][]interface{}{
		{"Order Number", "Order Date", "Affiliate ID", "Order Amount", "Currency", "Order Status", "Channel"},
		{"1001", "2024-01-01", "AFF-1", 100.5, "USD", "Completed", "web"},
		{"1002", "2024-01-03", "", 50, "EUR", "Refunded", "app"},
		{"1003", "bad-date", "AFF-2", 10, "GBP", "Completed", "web"},
	})

	orders, err := ParseOrders(path)
	if err != nil {
		t.Fatalf("ParseOrders() error = %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders after skipping the bad-date row, got %d", len(orders))
	}

	first := orders[0]
	if first.OrderNumber != "1001" || first.Currency != "USD" || first.Status != "Completed" {
		t.Errorf("unexpected first order: %+v", first)
	}
	if first.Amount.String() != "100.5" {
		t.Errorf("Amount = %s, want 100.5", first.Amount)
	}
	if first.Extra["Channel"] != "web" {
		t.Errorf("passthrough column lost: Extra = %v", first.Extra)
	}

	// The raw affiliate ID is preserved; normalization is the loader's job.
	if orders[1].AffiliateID != "" {
		t.Errorf("AffiliateID = %q, want empty as in source", orders[1].AffiliateID)
	}
}

func TestParseOrders_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "orders.xlsx", [][]interface{}{
		{"Order Number", "Order Date", "Affiliate ID", "Order Amount", "Currency"},
		{"1001", "2024-01-01", "AFF-1", 100, "USD"},
	})

	_, err := ParseOrders(path)
	if err == nil {
		t.Fatal("expected error for missing Order Status column, got nil")
	}
	if !strings.Contains(err.Error(), "Order Status") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-05", "2024-01-05"},
		{"2024-01-05 00:00:00", "2024-01-05"},
		{"01-05-24", "2024-01-05"},
		{"2024/01/05", "2024-01-05"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in)
			if err != nil {
				t.Fatalf("parseDate(%q) error = %v", tt.in, err)
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("parseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}
