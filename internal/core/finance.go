// Package core provides the wedding-planning domain: vendor, payment and
// RSVP records, validation, and the financial aggregation every dashboard
// and export depends on.
//
// This file contains the vendor financial aggregator. All functions are
// pure and total over well-formed input: an absent payments list is an
// empty list, refundable payments never count toward any total, and a
// payment's converted amount is authoritative for paid/outstanding math.
package core

// VendorCost sums the raw amount of every non-refundable payment.
//
// No currency conversion is performed: payments in different currencies are
// summed numerically as-is, which matches the historical dashboard behavior.
// Use VendorCostStrict when mixed currencies should be rejected instead.
func VendorCost(v Vendor) float64 {
	var sum float64
	for _, p := range v.Payments {
		if p.Refundable {
			continue
		}
		sum += p.Amount
	}
	return sum
}

// VendorCostStrict is VendorCost with a same-currency precondition: it
// returns ErrMixedCurrencies when non-refundable payments carry more than
// one currency, instead of silently mixing them.
func VendorCostStrict(v Vendor) (float64, error) {
	var sum float64
	seen := ""
	for _, p := range v.Payments {
		if p.Refundable {
			continue
		}
		cur := p.AmountCurrency
		if cur == "" {
			cur = v.VendorCurrency
		}
		if seen == "" {
			seen = cur
		} else if cur != seen {
			return 0, ErrMixedCurrencies
		}
		sum += p.Amount
	}
	return sum, nil
}

// VendorConvertedCost sums the converted amount (0 when absent) of every
// non-refundable payment. This is the authoritative total for portfolio
// rollups, expressed in the reporting currency.
func VendorConvertedCost(v Vendor) float64 {
	var sum float64
	for _, p := range v.Payments {
		if p.Refundable {
			continue
		}
		if p.AmountConverted != nil {
			sum += *p.AmountConverted
		}
	}
	return sum
}

// VendorPaid sums paid non-refundable payments, preferring the converted
// amount over the raw amount.
func VendorPaid(v Vendor) float64 {
	var sum float64
	for _, p := range v.Payments {
		if p.Refundable || !p.Paid {
			continue
		}
		if p.AmountConverted != nil {
			sum += *p.AmountConverted
		} else {
			sum += p.Amount
		}
	}
	return sum
}

// VendorOutstanding is converted cost minus paid. A negative result means
// the vendor was overpaid relative to the recorded cost; callers must not
// clamp it away.
func VendorOutstanding(v Vendor) float64 {
	return VendorConvertedCost(v) - VendorPaid(v)
}

// VendorStats is a portfolio-wide rollup across a couple's vendors, with
// the money fields in the reporting currency.
type VendorStats struct {
	TotalVendors     int     `json:"totalVendors"`
	TotalCost        float64 `json:"totalCost"`
	TotalPaid        float64 `json:"totalPaid"`
	TotalOutstanding float64 `json:"totalOutstanding"`
}

// CalcVendorStats aggregates the per-vendor functions over vendors.
func CalcVendorStats(vendors []Vendor) VendorStats {
	stats := VendorStats{TotalVendors: len(vendors)}
	for _, v := range vendors {
		stats.TotalCost += VendorConvertedCost(v)
		stats.TotalPaid += VendorPaid(v)
		stats.TotalOutstanding += VendorOutstanding(v)
	}
	return stats
}
