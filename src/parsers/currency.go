// backend/src/parsers/currency.go
package parsers

import (
	"fmt"
	"log"

	"github.com/username/affiliatereports/backend/src/models"
)

// ParseCurrencyRates reads the daily currency rate table. One row per
// calendar date is expected; the table carries USD->EUR and GBP->EUR
// multipliers.
func ParseCurrencyRates(path string) ([]models.CurrencyRate, error) {
	rows, err := readFirstSheet(path)
	if err != nil {
		return nil, err
	}

	idx, err := headerIndex(rows[0], "date", "USD", "GBP")
	if err != nil {
		return nil, fmt.Errorf("currency rates %s: %w", path, err)
	}

	var rates []models.CurrencyRate
	for _, row := range rows[1:] {
		date, err := parseDate(cell(row, idx["date"]))
		if err != nil {
			log.Printf("Currency rates parser: skipping row with invalid date %q", cell(row, idx["date"]))
			continue
		}
		usd, err := parseDecimal(cell(row, idx["USD"]))
		if err != nil {
			log.Printf("Currency rates parser: skipping row with invalid USD rate %q", cell(row, idx["USD"]))
			continue
		}
		gbp, err := parseDecimal(cell(row, idx["GBP"]))
		if err != nil {
			log.Printf("Currency rates parser: skipping row with invalid GBP rate %q", cell(row, idx["GBP"]))
			continue
		}

		rates = append(rates, models.CurrencyRate{Date: date, USD: usd, GBP: gbp})
	}

	return rates, nil
}
