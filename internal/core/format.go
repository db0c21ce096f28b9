package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"CAD": "$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "$",
	"CHF": "Fr",
}

// CurrencySymbol returns the display symbol for a currency code, or the
// code itself for unknown currencies.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// FormatCurrency renders an amount as a zero-decimal currency string such
// as "$1,234" or "-€50". Rounding is half-to-even so the output is
// deterministic and matches standard locale formatting.
func FormatCurrency(amount float64, code string) string {
	d := decimal.NewFromFloat(amount).RoundBank(0)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}
	s := groupThousands(d.String())
	out := CurrencySymbol(code) + s
	if neg {
		return "-" + out
	}
	return out
}

// FormatCurrencyPtr is FormatCurrency with an optional amount: nil renders
// as the zero-value string in the currency's symbol convention.
func FormatCurrencyPtr(amount *float64, code string) string {
	if amount == nil {
		return FormatCurrency(0, code)
	}
	return FormatCurrency(*amount, code)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDate renders an ISO calendar date or RFC 3339 timestamp as a long
// US-style date ("January 2, 2006"). Unparseable input is returned as-is.
func FormatDate(s string) string {
	for _, layout := range []string{time.RFC3339, DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return s
}

// MaskEmail hides the middle of the local part: "someone@x.dev" becomes
// "s*****e@x.dev". Short or malformed addresses are returned unchanged.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 2 || at == len(email)-1 {
		return email
	}
	local, domain := email[:at], email[at+1:]
	return local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:] + "@" + domain
}

// MaskPhone keeps only the last four digits: "+1 604 555 1234" becomes
// "***-***-1234". Numbers with fewer than four digits are returned as-is.
func MaskPhone(phone string) string {
	var digits []byte
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	if len(digits) < 4 {
		return phone
	}
	return "***-***-" + string(digits[len(digits)-4:])
}
