// backend/src/processors/currency_processor.go
package processors

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/username/affiliatereports/backend/src/logger"
	"github.com/username/affiliatereports/backend/src/models"
)

type currencyProcessorImpl struct {
	rates  *cache.Cache
	strict bool
}

// NewCurrencyProcessor indexes the daily rate table into a date-keyed lookup.
// The rate table is small and static for one run, so entries never expire.
func NewCurrencyProcessor(rates []models.CurrencyRate, strict bool) CurrencyProcessor {
	c := cache.New(cache.NoExpiration, 0)
	for _, r := range rates {
		c.Set(rateKey(models.CurrencyUSD, r.Date), r.USD, cache.NoExpiration)
		c.Set(rateKey(models.CurrencyGBP, r.Date), r.GBP, cache.NoExpiration)
	}
	return &currencyProcessorImpl{rates: c, strict: strict}
}

func rateKey(currency string, date time.Time) string {
	return fmt.Sprintf("rate-%s-%s", currency, date.Format("2006-01-02"))
}

// rate returns the multiplier into EUR for a currency on a given date.
func (p *currencyProcessorImpl) rate(currency string, date time.Time) (decimal.Decimal, bool) {
	if currency == models.CurrencyEUR {
		return decimal.NewFromInt(1), true
	}
	if v, found := p.rates.Get(rateKey(currency, date)); found {
		return v.(decimal.Decimal), true
	}
	return decimal.Decimal{}, false
}

// Process converts USD and GBP amounts into EUR using the rate for the order
// date and relabels the currency. EUR amounts pass through unchanged, so the
// conversion is idempotent. An order date with no rate row keeps its source
// amount and is flagged via Converted=false; strict mode turns that gap into
// a fatal error instead.
func (p *currencyProcessorImpl) Process(orders []models.Order) ([]models.Order, error) {
	converted := make([]models.Order, 0, len(orders))

	for _, o := range orders {
		switch o.Currency {
		case models.CurrencyEUR:
			o.Converted = true

		case models.CurrencyUSD, models.CurrencyGBP:
			rate, found := p.rate(o.Currency, o.OrderDate)
			if !found {
				if p.strict {
					return nil, fmt.Errorf("no %s rate for %s (order %s)",
						o.Currency, o.OrderDate.Format("2006-01-02"), o.OrderNumber)
				}
				logger.L.Warn("No currency rate for order date, amount left unconverted",
					"currency", o.Currency,
					"date", o.OrderDate.Format("2006-01-02"),
					"orderNumber", o.OrderNumber)
				break
			}
			o.Amount = o.Amount.Mul(rate)
			o.Currency = models.CurrencyEUR
			o.Converted = true

		default:
			logger.L.Warn("Unsupported currency, amount left unchanged",
				"currency", o.Currency, "orderNumber", o.OrderNumber)
		}

		converted = append(converted, o)
	}

	return converted, nil
}
