package core

import (
	"strings"
	"testing"
)

func TestVendorValidate(t *testing.T) {
	good := Vendor{VendorName: "Venue Co", VendorType: "venue", VendorCurrency: "EUR"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		v    Vendor
		want error
	}{
		{Vendor{VendorType: "venue"}, ErrEmptyVendorName},
		{Vendor{VendorName: "x", VendorType: " "}, ErrEmptyVendorType},
		{Vendor{VendorName: "x", VendorType: "venue", VendorCurrency: "XXX"}, ErrInvalidCurrency},
		{Vendor{VendorName: "x", VendorType: "venue", Payments: []Payment{{Amount: -1}}}, ErrInvalidAmount},
		{Vendor{VendorName: "x", VendorType: "venue", Payments: []Payment{{DueDate: "tomorrow"}}}, ErrInvalidDate},
	}
	for i, tc := range cases {
		if err := tc.v.Validate(); err != tc.want {
			t.Fatalf("case %d: got %v, want %v", i, err, tc.want)
		}
	}
}

func TestPaymentValidate(t *testing.T) {
	good := Payment{Amount: 100, AmountCurrency: "USD", PaymentType: PaymentCash, DueDate: "2026-07-01"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Payment{PaymentType: "cheque"}).Validate(); err == nil {
		t.Fatalf("expected error for unknown payment type")
	}
	// Zero amounts are allowed; only negatives are rejected.
	if err := (Payment{Amount: 0}).Validate(); err != nil {
		t.Fatalf("zero amount should validate, got %v", err)
	}
}

func TestValidateRSVP(t *testing.T) {
	good := RSVP{Name: "Ann Lee", Email: "ann@example.com", Phone: "604-555-1234", NumberOfGuests: 1}
	if errs := ValidateRSVP(good); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	bad := RSVP{
		Name:  "A",
		Email: "nope",
		Phone: "123",
		Guests: []Guest{
			{Name: "B"}, {Name: "C"}, {Name: "D"},
		},
	}
	errs := ValidateRSVP(bad)
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"name", "email", "phone", "guests", "number_of_guests"} {
		if !fields[f] {
			t.Fatalf("expected error for field %s, got %v", f, errs)
		}
	}
}

func TestPlannerCoupleValidate(t *testing.T) {
	good := PlannerCouple{CoupleNames: "Alice & Bob", WeddingDate: "2027-06-12"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (PlannerCouple{}).Validate(); err != ErrEmptyCoupleNames {
		t.Fatalf("got %v", err)
	}
	if err := (PlannerCouple{CoupleNames: "x", CoupleEmail: "bad"}).Validate(); err != ErrInvalidEmail {
		t.Fatalf("got %v", err)
	}
}

func TestSanitizeText(t *testing.T) {
	if got := SanitizeText("  <b>hello</b>  "); got != "bhello/b" {
		t.Fatalf("got %q", got)
	}
	long := strings.Repeat("a", 600)
	if got := SanitizeText(long); len(got) != 500 {
		t.Fatalf("got len %d, want 500", len(got))
	}
}
