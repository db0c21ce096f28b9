package localstore

import "fmt"

// dynamicDate builds a due-date sentinel resolved relative to the current
// time at seed time and again on every read.
func dynamicDate(daysFromNow int) string {
	return fmt.Sprintf("__DYNAMIC_DATE_OFFSET_%d__", daysFromNow)
}

func seedVendors() []Record {
	return []Record{
		{
			"vendor_name":     "Harbourview Estate",
			"vendor_type":     "venue",
			"contact_name":    "Marta Keller",
			"email":           "events@harbourview.example",
			"phone":           "+1 604 555 0188",
			"website":         "https://harbourview.example",
			"vendor_currency": "CAD",
			"contract_required": true,
			"contract_signed":   true,
			"contract_signed_date": "2026-02-14",
			"notes": "Includes tables and chairs for 120 guests.",
			"payments": []any{
				map[string]any{
					"id":           "seed-venue-deposit",
					"description":  "Booking deposit",
					"amount":       3000.0,
					"amount_currency": "CAD",
					"payment_type": "bank_transfer",
					"due_date":     "2026-02-28",
					"paid":         true,
					"paid_date":    "2026-02-20",
					"refundable":   false,
				},
				map[string]any{
					"id":           "seed-venue-final",
					"description":  "Final balance",
					"amount":       9000.0,
					"amount_currency": "CAD",
					"payment_type": "bank_transfer",
					"due_date":     dynamicDate(30),
					"paid":         false,
					"refundable":   false,
				},
				map[string]any{
					"id":           "seed-venue-damage",
					"description":  "Damage deposit (returned after event)",
					"amount":       500.0,
					"amount_currency": "CAD",
					"payment_type": "bank_transfer",
					"due_date":     dynamicDate(30),
					"paid":         false,
					"refundable":   true,
				},
			},
		},
		{
			"vendor_name":     "Lumen & Grain Photography",
			"vendor_type":     "photographer",
			"contact_name":    "Iris Fontaine",
			"email":           "hello@lumengrain.example",
			"phone":           "+33 1 55 55 01 99",
			"vendor_currency": "EUR",
			"contract_required": true,
			"contract_signed":   false,
			"notes": "Travel from Paris included up to 200 km.",
			"payments": []any{
				map[string]any{
					"id":           "seed-photo-deposit",
					"description":  "Retainer",
					"amount":       1000.0,
					"amount_currency": "EUR",
					"amount_converted": 1480.0,
					"amount_converted_currency": "CAD",
					"payment_type": "bank_transfer",
					"due_date":     "2026-03-15",
					"paid":         true,
					"paid_date":    "2026-03-10",
					"refundable":   false,
				},
				map[string]any{
					"id":           "seed-photo-final",
					"description":  "Balance on delivery",
					"amount":       1500.0,
					"amount_currency": "EUR",
					"amount_converted": 2220.0,
					"amount_converted_currency": "CAD",
					"payment_type": "bank_transfer",
					"due_date":     dynamicDate(7),
					"paid":         false,
					"refundable":   false,
				},
			},
		},
		{
			"vendor_name":     "Petal & Stem",
			"vendor_type":     "florist",
			"contact_name":    "Theo Brandt",
			"email":           "theo@petalstem.example",
			"phone":           "+1 604 555 0123",
			"vendor_currency": "CAD",
			"contract_required": false,
			"contract_signed":   false,
			"payments": []any{
				map[string]any{
					"id":           "seed-florist-full",
					"description":  "Full arrangement package",
					"amount":       1800.0,
					"amount_currency": "CAD",
					"payment_type": "cash",
					"due_date":     dynamicDate(14),
					"paid":         false,
					"refundable":   false,
				},
			},
		},
	}
}

func seedRSVPs() []Record {
	return []Record{
		{
			"name":             "Ann Whitfield",
			"email":            "ann.whitfield@example.com",
			"phone":            "604-555-2001",
			"attending":        true,
			"number_of_guests": 2,
			"guests":           []any{map[string]any{"name": "Ben Whitfield"}},
		},
		{
			"name":             "Carlos Mendes",
			"email":            "carlos.mendes@example.com",
			"phone":            "604-555-2002",
			"attending":        false,
			"number_of_guests": 1,
			"guests":           []any{},
		},
	}
}

// Initialize seeds vendors and rsvps only when their tables are absent, so
// an existing demo session survives a restart.
func (s *Store) Initialize() {
	if s.kv == nil {
		return
	}
	if _, ok := s.kv.Get(s.key(TableVendors)); !ok {
		s.seedTable(TableVendors, seedVendors())
	}
	if _, ok := s.kv.Get(s.key(TableRSVPs)); !ok {
		s.seedTable(TableRSVPs, seedRSVPs())
	}
}

// ResetDemo clears every known table and reseeds the example data. Seeded
// due-date sentinels are resolved immediately so a reset always presents
// near-future payment due dates.
func (s *Store) ResetDemo() {
	if s.kv == nil {
		return
	}
	s.mu.Lock()
	for _, table := range Tables {
		if err := s.kv.Delete(s.key(table)); err != nil {
			// Best effort: an unwritable store degrades to empty reads anyway.
			continue
		}
	}
	s.mu.Unlock()
	s.Initialize()
}

// seedTable inserts seed records through the normal insert path so each
// gets a real id and timestamps, then resolves sentinels in the stored
// snapshot.
func (s *Store) seedTable(table string, records []Record) {
	for _, rec := range records {
		s.Insert(table, rec)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.readTable(table)
	s.writeTable(table, stored)
}
