// backend/src/processors/weekly_processor.go
package processors

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/affiliatereports/backend/src/models"
)

// WeekStart returns the Monday on or before the given date (ISO week start).
func WeekStart(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

type weeklyProcessorImpl struct{}

func NewWeeklyProcessor() WeeklyProcessor {
	return &weeklyProcessorImpl{}
}

// Process groups orders by (affiliate ID, week start) and sums the monetary
// fields. Every order lands in exactly one bucket. Output is sorted by
// affiliate ID, then week start, so report content is deterministic.
func (p *weeklyProcessorImpl) Process(orders []models.Order) []models.WeeklyAggregate {
	type bucketKey struct {
		affiliateID string
		weekStart   time.Time
	}

	buckets := make(map[bucketKey]*models.WeeklyAggregate)
	for _, o := range orders {
		key := bucketKey{o.AffiliateID, WeekStart(o.OrderDate)}
		agg, ok := buckets[key]
		if !ok {
			agg = &models.WeeklyAggregate{
				AffiliateID: key.affiliateID,
				WeekStart:   key.weekStart,
			}
			buckets[key] = agg
		}
		agg.OrderCount++
		agg.TotalOrderAmount = agg.TotalOrderAmount.Add(o.Amount)
		agg.TotalProcessingFee = agg.TotalProcessingFee.Add(nullToZero(o.ProcessingFee))
		agg.TotalRefundFee = agg.TotalRefundFee.Add(nullToZero(o.RefundFee))
		agg.TotalChargebackFee = agg.TotalChargebackFee.Add(nullToZero(o.ChargebackFee))
	}

	aggregates := make([]models.WeeklyAggregate, 0, len(buckets))
	for _, agg := range buckets {
		aggregates = append(aggregates, *agg)
	}
	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].AffiliateID != aggregates[j].AffiliateID {
			return aggregates[i].AffiliateID < aggregates[j].AffiliateID
		}
		return aggregates[i].WeekStart.Before(aggregates[j].WeekStart)
	})

	return aggregates
}

// nullToZero is the single point where unset fee fields become zero for
// summation.
func nullToZero(d decimal.NullDecimal) decimal.Decimal {
	if d.Valid {
		return d.Decimal
	}
	return decimal.Decimal{}
}
