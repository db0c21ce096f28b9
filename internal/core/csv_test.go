package core

import (
	"strings"
	"testing"
)

func TestExportVendorsCSVRowCount(t *testing.T) {
	vendors := []Vendor{
		{VendorName: "Venue Co", VendorType: "venue", Payments: []Payment{
			{Description: "deposit", Amount: 1000},
			{Description: "second", Amount: 2000},
			{Description: "final", Amount: 3000},
		}},
		{VendorName: "No Payments Yet", VendorType: "florist"},
	}
	out := ExportVendorsCSV(vendors)
	lines := strings.Split(out, "\n")
	// Header plus max(1, payments) per vendor: 3 + 1 = 4 data rows.
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("unexpected trailing newline")
	}
	// The zero-payment vendor still appears.
	if !strings.Contains(out, `"No Payments Yet"`) {
		t.Fatalf("zero-payment vendor dropped:\n%s", out)
	}
}

func TestExportVendorsCSVColumns(t *testing.T) {
	conv := 1100.0
	vendors := []Vendor{
		{VendorName: "Photo", VendorType: "photo", VendorCurrency: "EUR", Notes: "note",
			Payments: []Payment{{
				Description:             "deposit",
				Amount:                  1000,
				AmountCurrency:          "EUR",
				AmountConverted:         &conv,
				AmountConvertedCurrency: "USD",
				PaymentType:             PaymentBankTransfer,
				DueDate:                 "2026-10-01",
				Paid:                    true,
				PaidDate:                "2026-09-01",
			}}},
	}
	out := ExportVendorsCSV(vendors)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(lines))
	}
	headerCols := strings.Split(lines[0], ",")
	if len(headerCols) != 24 {
		t.Fatalf("expected 24 header columns, got %d", len(headerCols))
	}
	row := lines[1]
	for _, want := range []string{`"Photo"`, `"deposit"`, `"1000"`, `"1100"`, `"USD"`, `"Bank Transfer"`, `"2026-10-01"`, `"Yes"`, `"2026-09-01"`, `"No"`, `"note"`} {
		if !strings.Contains(row, want) {
			t.Fatalf("row missing %s:\n%s", want, row)
		}
	}
}

func TestExportVendorsCSVQuoteEscaping(t *testing.T) {
	vendors := []Vendor{
		{VendorName: `The "Grand" Hall`, VendorType: "venue"},
	}
	out := ExportVendorsCSV(vendors)
	if !strings.Contains(out, `"The ""Grand"" Hall"`) {
		t.Fatalf("embedded quotes not doubled:\n%s", out)
	}
}

func TestExportRSVPsCSV(t *testing.T) {
	rsvps := []RSVP{
		{Name: "Ann", Email: "ann@example.com", Phone: "6045551234", Attending: true,
			NumberOfGuests: 2,
			Guests:         []Guest{{Name: "Ben"}},
			CreatedAt:      "2026-05-01"},
		{Name: "Cy", Email: "cy@example.com", Phone: "6045555678", Attending: false, NumberOfGuests: 1},
	}
	out := ExportRSVPsCSV(rsvps)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Name,Email,Phone,Attending,Plus One 1,Plus One 2,Created At" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"Ben"`) || !strings.Contains(lines[1], `"Yes"`) {
		t.Fatalf("unexpected first row: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"May 1, 2026"`) {
		t.Fatalf("created_at not formatted: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"No"`) {
		t.Fatalf("unexpected second row: %s", lines[2])
	}
}
