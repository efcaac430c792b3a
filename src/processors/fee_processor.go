// backend/src/processors/fee_processor.go
package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/affiliatereports/backend/src/logger"
	"github.com/username/affiliatereports/backend/src/models"
)

type feeProcessorImpl struct {
	schedule map[string]models.AffiliateRate
}

// NewFeeProcessor reduces the schedule table to one entry per affiliate ID.
// The last row in table order wins. That mirrors how the schedule source
// appends updated rates over time; it is a dependency on input row order, not
// a temporal "latest" guarantee.
func NewFeeProcessor(rates []models.AffiliateRate) FeeProcessor {
	schedule := make(map[string]models.AffiliateRate, len(rates))
	for _, r := range rates {
		schedule[r.AffiliateID] = r
	}
	return &feeProcessorImpl{schedule: schedule}
}

// Process left-joins orders to the reduced schedule. Matched orders always
// get a processing fee; the refund and chargeback fees are only set when the
// order status matches exactly. Everything else stays null — the weekly
// aggregation decides what null means.
func (p *feeProcessorImpl) Process(orders []models.Order) []models.Order {
	processed := make([]models.Order, 0, len(orders))

	for _, o := range orders {
		rate, ok := p.schedule[o.AffiliateID]
		if !ok {
			// Unmatched affiliates (the Unknown sentinel included) keep null
			// fees and still flow through to aggregation.
			logger.L.Warn("No fee schedule entry for affiliate",
				"affiliateID", o.AffiliateID, "orderNumber", o.OrderNumber)
			processed = append(processed, o)
			continue
		}

		o.ProcessingFee = decimal.NewNullDecimal(o.Amount.Mul(rate.ProcessingRate))

		switch o.Status {
		case models.StatusRefunded:
			o.RefundFee = decimal.NewNullDecimal(rate.RefundFee)
		case models.StatusChargeback:
			o.ChargebackFee = decimal.NewNullDecimal(rate.ChargebackFee)
		}

		processed = append(processed, o)
	}

	return processed
}
