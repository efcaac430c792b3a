package processors

import (
	"testing"

	"github.com/username/affiliatereports/backend/src/models"
)

func testSchedule(t *testing.T) []models.AffiliateRate {
	t.Helper()
	return []models.AffiliateRate{
		{AffiliateID: "AFF-1", AffiliateName: "Affiliate A", ProcessingRate: dec(t, "0.03"), ChargebackFee: dec(t, "15"), RefundFee: dec(t, "5")},
		{AffiliateID: "AFF-2", AffiliateName: "Affiliate B", ProcessingRate: dec(t, "0.02"), ChargebackFee: dec(t, "10"), RefundFee: dec(t, "4")},
	}
}

func TestFeeProcessor_ProcessingFee(t *testing.T) {
	p := NewFeeProcessor(testSchedule(t))

	got := p.Process([]models.Order{
		makeOrder(t, "1", "2024-01-01", "AFF-1", "200", "EUR", "Completed"),
	})

	if !got[0].ProcessingFee.Valid {
		t.Fatal("ProcessingFee not set for matched affiliate")
	}
	if !got[0].ProcessingFee.Decimal.Equal(dec(t, "6")) {
		t.Errorf("ProcessingFee = %s, want 6", got[0].ProcessingFee.Decimal)
	}
}

func TestFeeProcessor_StatusGating(t *testing.T) {
	p := NewFeeProcessor(testSchedule(t))

	tests := []struct {
		name           string
		status         string
		wantRefund     string // "" means must stay null
		wantChargeback string
	}{
		{"Completed gets neither conditional fee", "Completed", "", ""},
		{"Refunded gets exactly the schedule refund fee", "Refunded", "5", ""},
		{"Chargeback gets exactly the schedule chargeback fee", "Chargeback", "", "15"},
		{"other statuses get neither conditional fee", "Pending", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Process([]models.Order{
				makeOrder(t, "1", "2024-01-01", "AFF-1", "100", "EUR", tt.status),
			})
			o := got[0]

			if tt.wantRefund == "" {
				if o.RefundFee.Valid {
					t.Errorf("RefundFee = %s, want null", o.RefundFee.Decimal)
				}
			} else if !o.RefundFee.Valid || !o.RefundFee.Decimal.Equal(dec(t, tt.wantRefund)) {
				t.Errorf("RefundFee = %+v, want %s", o.RefundFee, tt.wantRefund)
			}

			if tt.wantChargeback == "" {
				if o.ChargebackFee.Valid {
					t.Errorf("ChargebackFee = %s, want null", o.ChargebackFee.Decimal)
				}
			} else if !o.ChargebackFee.Valid || !o.ChargebackFee.Decimal.Equal(dec(t, tt.wantChargeback)) {
				t.Errorf("ChargebackFee = %+v, want %s", o.ChargebackFee, tt.wantChargeback)
			}

			// The processing fee is unconditional for matched affiliates.
			if !o.ProcessingFee.Valid {
				t.Error("ProcessingFee not set")
			}
		})
	}
}

func TestFeeProcessor_LastScheduleRowWins(t *testing.T) {
	// Table order defines "last": a later row for the same affiliate replaces
	// the earlier rates.
	schedule := []models.AffiliateRate{
		{AffiliateID: "AFF-1", AffiliateName: "Affiliate A", ProcessingRate: dec(t, "0.05"), ChargebackFee: dec(t, "20"), RefundFee: dec(t, "9")},
		{AffiliateID: "AFF-1", AffiliateName: "Affiliate A", ProcessingRate: dec(t, "0.02"), ChargebackFee: dec(t, "12"), RefundFee: dec(t, "3")},
	}
	p := NewFeeProcessor(schedule)

	got := p.Process([]models.Order{
		makeOrder(t, "1", "2024-01-01", "AFF-1", "100", "EUR", "Refunded"),
	})

	if !got[0].ProcessingFee.Decimal.Equal(dec(t, "2")) {
		t.Errorf("ProcessingFee = %s, want 2 (from last schedule row)", got[0].ProcessingFee.Decimal)
	}
	if !got[0].RefundFee.Decimal.Equal(dec(t, "3")) {
		t.Errorf("RefundFee = %s, want 3 (from last schedule row)", got[0].RefundFee.Decimal)
	}
}

func TestFeeProcessor_UnmatchedAffiliate(t *testing.T) {
	p := NewFeeProcessor(testSchedule(t))

	got := p.Process([]models.Order{
		makeOrder(t, "1", "2024-01-01", models.UnknownAffiliateID, "100", "EUR", "Refunded"),
	})

	if len(got) != 1 {
		t.Fatalf("unmatched order dropped; expected 1 order, got %d", len(got))
	}
	o := got[0]
	if o.ProcessingFee.Valid || o.RefundFee.Valid || o.ChargebackFee.Valid {
		t.Errorf("unmatched affiliate got fees set: %+v", o)
	}
}
