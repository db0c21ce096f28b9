package core

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{0, "USD", "$0"},
		{1234, "USD", "$1,234"},
		{1234567, "CAD", "$1,234,567"},
		{500, "EUR", "€500"},
		{-500, "EUR", "-€500"},
		{75, "GBP", "£75"},
		{980, "JPY", "¥980"},
		{120, "CHF", "Fr120"},
		{1000, "SEK", "SEK1,000"}, // unknown code falls back to the code
		// Half-to-even rounding at the integer boundary.
		{1650.5, "USD", "$1,650"},
		{1651.5, "USD", "$1,652"},
		{2.4, "USD", "$2"},
		{2.6, "USD", "$3"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.amount, tc.code); got != tc.want {
			t.Fatalf("FormatCurrency(%v, %s) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestFormatCurrencyPtr(t *testing.T) {
	if got := FormatCurrencyPtr(nil, "USD"); got != "$0" {
		t.Fatalf("nil amount = %q, want $0", got)
	}
	v := 42.0
	if got := FormatCurrencyPtr(&v, "EUR"); got != "€42" {
		t.Fatalf("got %q, want €42", got)
	}
}

func TestMaskEmail(t *testing.T) {
	cases := []struct{ in, want string }{
		{"someone@example.com", "s*****e@example.com"},
		{"ab@example.com", "ab@example.com"}, // too short to mask
		{"not-an-email", "not-an-email"},
	}
	for _, tc := range cases {
		if got := MaskEmail(tc.in); got != tc.want {
			t.Fatalf("MaskEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMaskPhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"+1 (604) 555-1234", "***-***-1234"},
		{"6045559876", "***-***-9876"},
		{"123", "123"},
	}
	for _, tc := range cases {
		if got := MaskPhone(tc.in); got != tc.want {
			t.Fatalf("MaskPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-05-01"); got != "May 1, 2026" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDate("2026-05-01T10:30:00Z"); got != "May 1, 2026" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Fatalf("got %q", got)
	}
}
