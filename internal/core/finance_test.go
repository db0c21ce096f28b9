package core

import "testing"

func fptr(f float64) *float64 { return &f }

func TestVendorTotalsEmptyPayments(t *testing.T) {
	for i, v := range []Vendor{
		{VendorName: "a", VendorType: "florist"},
		{VendorName: "b", VendorType: "florist", Payments: []Payment{}},
	} {
		if got := VendorCost(v); got != 0 {
			t.Fatalf("case %d VendorCost = %v, want 0", i, got)
		}
		if got := VendorPaid(v); got != 0 {
			t.Fatalf("case %d VendorPaid = %v, want 0", i, got)
		}
		if got := VendorOutstanding(v); got != 0 {
			t.Fatalf("case %d VendorOutstanding = %v, want 0", i, got)
		}
	}
}

func TestRefundablePaymentsExcluded(t *testing.T) {
	v := Vendor{
		VendorName: "venue", VendorType: "venue",
		Payments: []Payment{
			{Amount: 5000, AmountConverted: fptr(5500), Paid: true, Refundable: true},
			{Amount: 800, AmountConverted: fptr(880), Refundable: true},
		},
	}
	if got := VendorCost(v); got != 0 {
		t.Fatalf("VendorCost = %v, want 0", got)
	}
	if got := VendorConvertedCost(v); got != 0 {
		t.Fatalf("VendorConvertedCost = %v, want 0", got)
	}
	if got := VendorPaid(v); got != 0 {
		t.Fatalf("VendorPaid = %v, want 0", got)
	}
}

func TestVendorConvertedScenario(t *testing.T) {
	v := Vendor{
		VendorName: "photographer", VendorType: "photo", VendorCurrency: "EUR",
		Payments: []Payment{
			{Amount: 1000, AmountConverted: fptr(1100), AmountConvertedCurrency: "USD", Paid: true},
			{Amount: 500, AmountConverted: fptr(550), AmountConvertedCurrency: "USD"},
		},
	}
	if got := VendorConvertedCost(v); got != 1650 {
		t.Fatalf("VendorConvertedCost = %v, want 1650", got)
	}
	if got := VendorPaid(v); got != 1100 {
		t.Fatalf("VendorPaid = %v, want 1100", got)
	}
	if got := VendorOutstanding(v); got != 550 {
		t.Fatalf("VendorOutstanding = %v, want 550", got)
	}
}

func TestVendorPaidPrefersConverted(t *testing.T) {
	v := Vendor{
		VendorName: "dj", VendorType: "music",
		Payments: []Payment{
			{Amount: 300, Paid: true}, // no conversion recorded
			{Amount: 200, AmountConverted: fptr(260), Paid: true},
		},
	}
	if got := VendorPaid(v); got != 560 {
		t.Fatalf("VendorPaid = %v, want 560", got)
	}
}

func TestVendorOutstandingAllowsNegative(t *testing.T) {
	v := Vendor{
		VendorName: "cake", VendorType: "catering",
		Payments: []Payment{
			{Amount: 100, AmountConverted: fptr(100), Paid: true},
			{Amount: 200, AmountConverted: fptr(150), Paid: true},
		},
	}
	// Paid 250 against a recorded converted cost of 250 minus a later cost
	// reduction: construct paid > cost directly.
	v.Payments[1].AmountConverted = fptr(100)
	v.Payments[1].Amount = 150
	got := VendorOutstanding(v)
	if got != VendorConvertedCost(v)-VendorPaid(v) {
		t.Fatalf("outstanding identity broken: %v", got)
	}

	over := Vendor{Payments: []Payment{{Amount: 500, Paid: true}}}
	if got := VendorOutstanding(over); got != -500 {
		t.Fatalf("VendorOutstanding = %v, want -500", got)
	}
}

func TestVendorCostMixedCurrencies(t *testing.T) {
	v := Vendor{
		VendorName: "band", VendorType: "music", VendorCurrency: "EUR",
		Payments: []Payment{
			{Amount: 100, AmountCurrency: "EUR"},
			{Amount: 100, AmountCurrency: "USD"},
		},
	}
	// The permissive sum mixes currencies as-is.
	if got := VendorCost(v); got != 200 {
		t.Fatalf("VendorCost = %v, want 200", got)
	}
	if _, err := VendorCostStrict(v); err != ErrMixedCurrencies {
		t.Fatalf("VendorCostStrict err = %v, want ErrMixedCurrencies", err)
	}

	v.Payments[1].AmountCurrency = "EUR"
	sum, err := VendorCostStrict(v)
	if err != nil || sum != 200 {
		t.Fatalf("VendorCostStrict = %v, %v", sum, err)
	}
}

func TestCalcVendorStatsEmpty(t *testing.T) {
	stats := CalcVendorStats(nil)
	if stats.TotalVendors != 0 || stats.TotalCost != 0 || stats.TotalPaid != 0 || stats.TotalOutstanding != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestCalcVendorStatsAdditive(t *testing.T) {
	a := []Vendor{
		{VendorName: "a", VendorType: "venue", Payments: []Payment{
			{Amount: 100, AmountConverted: fptr(110), Paid: true},
		}},
	}
	b := []Vendor{
		{VendorName: "b", VendorType: "photo", Payments: []Payment{
			{Amount: 200, AmountConverted: fptr(220)},
			{Amount: 50, AmountConverted: fptr(55), Refundable: true},
		}},
		{VendorName: "c", VendorType: "music"},
	}
	sa, sb := CalcVendorStats(a), CalcVendorStats(b)
	combined := CalcVendorStats(append(append([]Vendor{}, a...), b...))
	if combined.TotalVendors != sa.TotalVendors+sb.TotalVendors {
		t.Fatalf("vendor count not additive")
	}
	if combined.TotalCost != sa.TotalCost+sb.TotalCost {
		t.Fatalf("TotalCost not additive: %v vs %v + %v", combined.TotalCost, sa.TotalCost, sb.TotalCost)
	}
	if combined.TotalPaid != sa.TotalPaid+sb.TotalPaid {
		t.Fatalf("TotalPaid not additive")
	}
	if combined.TotalOutstanding != sa.TotalOutstanding+sb.TotalOutstanding {
		t.Fatalf("TotalOutstanding not additive")
	}
}
