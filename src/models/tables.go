package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency codes handled by the pipeline. EUR is the reporting currency;
// every order amount is expressed in EUR after normalization.
const (
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
	CurrencyGBP = "GBP"
)

// Order statuses that trigger conditional fees.
const (
	StatusRefunded   = "Refunded"
	StatusChargeback = "Chargeback"
)

// UnknownAffiliateID is the sentinel substituted for missing, empty or "none"
// affiliate identifiers during loading.
const UnknownAffiliateID = "Unknown"

// AffiliateRate represents one row of the affiliate fee schedule table.
// An affiliate may appear multiple times; table order decides which entry is
// authoritative (see processors.FeeProcessor).
type AffiliateRate struct {
	AffiliateID    string          `json:"affiliate_id"`
	AffiliateName  string          `json:"affiliate_name"`
	ProcessingRate decimal.Decimal `json:"processing_rate"` // fraction, e.g. 0.03
	ChargebackFee  decimal.Decimal `json:"chargeback_fee"`  // fixed amount
	RefundFee      decimal.Decimal `json:"refund_fee"`      // fixed amount
}

// CurrencyRate represents one row of the daily currency rate table.
// Rates are multipliers into EUR for the given calendar date.
type CurrencyRate struct {
	Date time.Time       `json:"date"`
	USD  decimal.Decimal `json:"usd"` // USD -> EUR
	GBP  decimal.Decimal `json:"gbp"` // GBP -> EUR
}

// Order represents one transaction row, widened in place by the pipeline
// stages with the converted amount and the computed fee fields.
type Order struct {
	OrderNumber string            `json:"order_number"`
	OrderDate   time.Time         `json:"order_date"`
	AffiliateID string            `json:"affiliate_id"`
	Amount      decimal.Decimal   `json:"amount"` // EUR after currency normalization
	Currency    string            `json:"currency"`
	Status      string            `json:"status"`
	Extra       map[string]string `json:"extra,omitempty"` // source columns outside the contract, passed through untouched

	// Set by the currency processor. False means the order date had no rate
	// row and the amount is still in the source currency.
	Converted bool `json:"converted"`

	// Set by the fee processor. Null until the schedule join (and, for the
	// refund/chargeback fees, the status gate) populates them.
	ProcessingFee decimal.NullDecimal `json:"processing_fee"`
	RefundFee     decimal.NullDecimal `json:"refund_fee"`
	ChargebackFee decimal.NullDecimal `json:"chargeback_fee"`
}

// WeeklyAggregate is one report row: totals for one affiliate over one ISO
// week (Monday start). Null fees collapse to zero here and nowhere else.
type WeeklyAggregate struct {
	AffiliateID        string          `json:"affiliate_id"`
	WeekStart          time.Time       `json:"week_start"`
	OrderCount         int             `json:"order_count"`
	TotalOrderAmount   decimal.Decimal `json:"total_order_amount"`
	TotalProcessingFee decimal.Decimal `json:"total_processing_fee"`
	TotalRefundFee     decimal.Decimal `json:"total_refund_fee"`
	TotalChargebackFee decimal.Decimal `json:"total_chargeback_fee"`
}
