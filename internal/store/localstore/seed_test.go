package localstore

import (
	"strings"
	"testing"
	"time"
)

func checkVendorDueDates(t *testing.T, vendors []Record) {
	t.Helper()
	for _, v := range vendors {
		payments, _ := v["payments"].([]any)
		for _, p := range payments {
			payment := p.(map[string]any)
			due, _ := payment["due_date"].(string)
			if due == "" {
				continue
			}
			if strings.Contains(due, "__DYNAMIC_DATE_OFFSET_") {
				t.Fatalf("sentinel leaked into due_date: %q", due)
			}
			if _, err := time.Parse("2006-01-02", due); err != nil {
				t.Fatalf("due_date %q is not a calendar date: %v", due, err)
			}
		}
	}
}

func TestResetDemoSeedsVendors(t *testing.T) {
	s := New(NewMapKV())
	s.ResetDemo()

	vendors := s.Select(TableVendors).Collect()
	if len(vendors) == 0 {
		t.Fatalf("reset must seed vendors")
	}
	checkVendorDueDates(t, vendors)

	rsvps := s.Select(TableRSVPs).Collect()
	if len(rsvps) == 0 {
		t.Fatalf("reset must seed rsvps")
	}
}

func TestResetDemoClearsExistingData(t *testing.T) {
	s := New(NewMapKV())
	s.ResetDemo()
	custom := s.Insert(TableVendors, Record{"vendor_name": "My Own Vendor", "vendor_type": "venue"})

	s.ResetDemo()
	if got := s.Select(TableVendors).Eq("id", custom["id"]).Single(); got != nil {
		t.Fatalf("reset kept a pre-reset record: %v", got)
	}
	if got := s.Select(TableVendors).Collect(); len(got) == 0 {
		t.Fatalf("reset must reseed after clearing")
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	s := New(NewMapKV())
	s.Initialize()
	before := len(s.Select(TableVendors).Collect())
	s.Initialize()
	after := len(s.Select(TableVendors).Collect())
	if before == 0 || before != after {
		t.Fatalf("initialize reseeded an existing table: %d vs %d", before, after)
	}
}

func TestSeededDueDatesAreNearFuture(t *testing.T) {
	// Pin the clock well away from the authored seed dates to prove offsets
	// resolve relative to now, at read time as well as seed time.
	now := time.Date(2030, 3, 15, 9, 0, 0, 0, time.UTC)
	s := New(NewMapKV(), WithClock(func() time.Time { return now }))
	s.ResetDemo()

	found := false
	for _, v := range s.Select(TableVendors).Collect() {
		payments, _ := v["payments"].([]any)
		for _, p := range payments {
			payment := p.(map[string]any)
			due, _ := payment["due_date"].(string)
			d, err := time.Parse("2006-01-02", due)
			if err != nil {
				t.Fatalf("bad due date %q: %v", due, err)
			}
			if d.After(now) && d.Before(now.AddDate(0, 2, 0)) {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected at least one near-future due date")
	}
}
