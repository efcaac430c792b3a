// backend/src/processors/interfaces.go
package processors

import (
	"github.com/username/affiliatereports/backend/src/models"
)

// OrderLoader collapses exact duplicate order rows and normalizes missing
// affiliate identifiers to the "Unknown" sentinel.
type OrderLoader interface {
	Process(orders []models.Order) []models.Order
}

// CurrencyProcessor expresses every order amount in EUR. The error return is
// only used in strict mode, when a missing rate date aborts the run.
type CurrencyProcessor interface {
	Process(orders []models.Order) ([]models.Order, error)
}

// FeeProcessor augments orders with processing, refund and chargeback fees
// from the affiliate schedule.
type FeeProcessor interface {
	Process(orders []models.Order) []models.Order
}

// WeeklyProcessor buckets fully processed orders into per-(affiliate, week)
// aggregates.
type WeeklyProcessor interface {
	Process(orders []models.Order) []models.WeeklyAggregate
}
