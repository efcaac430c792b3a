// backend/src/parsers/affiliate.go
package parsers

import (
	"fmt"
	"log"

	"github.com/username/affiliatereports/backend/src/models"
)

// ParseAffiliateRates reads the affiliate fee schedule table. Rows are kept in
// source order because the schedule reduction is last-row-wins.
func ParseAffiliateRates(path string) ([]models.AffiliateRate, error) {
	rows, err := readFirstSheet(path)
	if err != nil {
		return nil, err
	}

	idx, err := headerIndex(rows[0],
		"Affiliate ID", "Affiliate Name", "Processing Rate", "Chargeback Fee", "Refund Fee")
	if err != nil {
		return nil, fmt.Errorf("affiliate rates %s: %w", path, err)
	}

	var rates []models.AffiliateRate
	for _, row := range rows[1:] {
		rate, err := parseDecimal(cell(row, idx["Processing Rate"]))
		if err != nil {
			log.Printf("Affiliate rates parser: skipping row with invalid processing rate %q", cell(row, idx["Processing Rate"]))
			continue
		}
		chargeback, err := parseDecimal(cell(row, idx["Chargeback Fee"]))
		if err != nil {
			log.Printf("Affiliate rates parser: skipping row with invalid chargeback fee %q", cell(row, idx["Chargeback Fee"]))
			continue
		}
		refund, err := parseDecimal(cell(row, idx["Refund Fee"]))
		if err != nil {
			log.Printf("Affiliate rates parser: skipping row with invalid refund fee %q", cell(row, idx["Refund Fee"]))
			continue
		}

		rates = append(rates, models.AffiliateRate{
			AffiliateID:    cell(row, idx["Affiliate ID"]),
			AffiliateName:  cell(row, idx["Affiliate Name"]),
			ProcessingRate: rate,
			ChargebackFee:  chargeback,
			RefundFee:      refund,
		})
	}

	return rates, nil
}
