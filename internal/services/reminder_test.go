package services

import (
	"context"
	"testing"
	"time"

	"bridezilla/internal/core"
	"bridezilla/internal/store/localstore"
)

func TestReminderScan(t *testing.T) {
	ctx := context.Background()
	adapter := localstore.NewAdapter(localstore.New(localstore.NewMapKV()))
	now := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	_, err := adapter.CreateVendor(ctx, core.Vendor{
		VendorName:     "Harbourview Estate",
		VendorType:     "venue",
		VendorCurrency: "CAD",
		Payments: []core.Payment{
			{Description: "Deposit", Amount: 2500, Paid: true, DueDate: "2026-05-01"},
			{Description: "Final balance", Amount: 5000, DueDate: "2026-06-18"},
			{Description: "Damage deposit", Amount: 500, DueDate: "2026-06-10", Refundable: true},
		},
	})
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	_, err = adapter.CreateVendor(ctx, core.Vendor{
		VendorName:     "Lumen & Grain",
		VendorType:     "photography",
		VendorCurrency: "EUR",
		Payments: []core.Payment{
			{Description: "Retainer", Amount: 800, DueDate: "2026-06-01"},
			{Description: "Balance", Amount: 1200, DueDate: "2026-09-01"},
		},
	})
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}

	scanner := NewReminderScanner(adapter, 7).WithClock(func() time.Time { return now })
	got, err := scanner.Scan(ctx)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	// Overdue retainer first by due date, then the due-soon final balance.
	// Paid, refundable, and far-future payments never appear.
	if len(got) != 2 {
		t.Fatalf("expected 2 reminders, got %d: %+v", len(got), got)
	}
	if got[0].Description != "Retainer" || got[0].Status != StatusOverdue {
		t.Fatalf("first reminder wrong: %+v", got[0])
	}
	if got[1].Description != "Final balance" || got[1].Status != StatusDueSoon {
		t.Fatalf("second reminder wrong: %+v", got[1])
	}
	if got[1].Currency != "CAD" {
		t.Fatalf("currency should fall back to vendor currency: %+v", got[1])
	}
	if got[0].Currency != "EUR" {
		t.Fatalf("currency should fall back to vendor currency: %+v", got[0])
	}
}

func TestReminderScanEmpty(t *testing.T) {
	adapter := localstore.NewAdapter(localstore.New(localstore.NewMapKV()))
	scanner := NewReminderScanner(adapter, 7)

	got, err := scanner.Scan(context.Background())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no reminders, got %+v", got)
	}
}
