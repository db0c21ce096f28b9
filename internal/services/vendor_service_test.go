package services

import (
	"context"
	"errors"
	"testing"

	"bridezilla/internal/core"
	"bridezilla/internal/store/localstore"
)

func newTestService() (*VendorService, *localstore.Adapter) {
	adapter := localstore.NewAdapter(localstore.New(localstore.NewMapKV()))
	return NewVendorService(adapter, nil), adapter
}

func TestCreateVendorRecordsActivity(t *testing.T) {
	ctx := context.Background()
	svc, adapter := newTestService()

	created, err := svc.CreateVendor(ctx, core.Vendor{
		VendorName:     "Harbourview Estate",
		VendorType:     "venue",
		VendorCurrency: "CAD",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	events, err := adapter.ListVendorActivity(ctx, created.ID)
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	if len(events) != 1 || events[0].Action != ActionVendorCreated {
		t.Fatalf("expected one vendor_created event, got %+v", events)
	}
}

func TestCreateVendorRejectsInvalid(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateVendor(context.Background(), core.Vendor{
		VendorName:     "  ",
		VendorType:     "venue",
		VendorCurrency: "CAD",
	})
	if !errors.Is(err, core.ErrEmptyVendorName) {
		t.Fatalf("expected ErrEmptyVendorName, got %v", err)
	}

	_, err = svc.CreateVendor(context.Background(), core.Vendor{
		VendorName:     "Venue",
		VendorType:     "venue",
		VendorCurrency: "XYZ",
	})
	if !errors.Is(err, core.ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestCreateVendorSanitizesText(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateVendor(context.Background(), core.Vendor{
		VendorName:     "  Petal <b>& Stem</b>  ",
		VendorType:     "florist",
		VendorCurrency: "CAD",
		Notes:          "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.VendorName != "Petal b& Stem/b" {
		t.Fatalf("name not sanitized: %q", created.VendorName)
	}
	if created.Notes != "scriptalert(1)/script" {
		t.Fatalf("notes not sanitized: %q", created.Notes)
	}
}

func TestUpdateVendorPaymentActivity(t *testing.T) {
	ctx := context.Background()
	svc, adapter := newTestService()

	created, err := svc.CreateVendor(ctx, core.Vendor{
		VendorName:     "Lumen & Grain",
		VendorType:     "photography",
		VendorCurrency: "EUR",
		Payments: []core.Payment{
			{Description: "Retainer", Amount: 800},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateVendor(ctx, created.ID, map[string]any{
		"payments": []map[string]any{
			{"description": "Retainer", "amount": 800, "paid": true},
		},
	})
	if err != nil || updated == nil {
		t.Fatalf("update: %v, %v", updated, err)
	}

	events, _ := adapter.ListVendorActivity(ctx, created.ID)
	if len(events) != 2 {
		t.Fatalf("expected create + payment events, got %+v", events)
	}
	found := false
	for _, ev := range events {
		if ev.Action == ActionPaymentMarkedPaid {
			found = true
		}
	}
	if !found {
		t.Fatalf("payment_marked_paid not recorded: %+v", events)
	}
}

func TestUpdateVendorNoMatch(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.UpdateVendor(context.Background(), "missing", map[string]any{"notes": "x"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing vendor, got %+v", got)
	}
}

func TestDeleteVendorRecordsActivity(t *testing.T) {
	ctx := context.Background()
	svc, adapter := newTestService()

	created, err := svc.CreateVendor(ctx, core.Vendor{
		VendorName:     "Petal & Stem",
		VendorType:     "florist",
		VendorCurrency: "CAD",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteVendor(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	events, _ := adapter.ListVendorActivity(ctx, created.ID)
	var actions []string
	for _, ev := range events {
		actions = append(actions, ev.Action)
	}
	if len(actions) != 2 {
		t.Fatalf("expected create + delete events, got %v", actions)
	}
}
