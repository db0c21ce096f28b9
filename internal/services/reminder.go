package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bridezilla/internal/store"
)

// UpcomingPayment is one reminder row: an unpaid payment that is overdue or
// falls within the reminder window.
type UpcomingPayment struct {
	VendorID    string        `json:"vendor_id"`
	VendorName  string        `json:"vendor_name"`
	PaymentID   string        `json:"payment_id"`
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	DueDate     string        `json:"due_date"`
	Status      PaymentStatus `json:"status"`
}

// ReminderScanner finds payments that need attention across all vendors.
type ReminderScanner struct {
	vendors    store.VendorStore
	windowDays int
	now        func() time.Time
}

func NewReminderScanner(vendors store.VendorStore, windowDays int) *ReminderScanner {
	return &ReminderScanner{
		vendors:    vendors,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// WithClock overrides the scanner's clock. Tests only.
func (s *ReminderScanner) WithClock(now func() time.Time) *ReminderScanner {
	s.now = now
	return s
}

// Scan returns overdue and due-soon payments sorted by due date, overdue
// first within the same date. Refundable deposits are not money owed, so
// they never produce reminders.
func (s *ReminderScanner) Scan(ctx context.Context) ([]UpcomingPayment, error) {
	vendors, err := s.vendors.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vendors for reminder scan: %w", err)
	}

	now := s.now()
	var upcoming []UpcomingPayment
	for _, v := range vendors {
		for _, p := range v.Payments {
			if p.Refundable {
				continue
			}
			status := ClassifyPayment(p, now, s.windowDays)
			if status != StatusOverdue && status != StatusDueSoon {
				continue
			}
			currency := p.AmountCurrency
			if currency == "" {
				currency = v.VendorCurrency
			}
			upcoming = append(upcoming, UpcomingPayment{
				VendorID:    v.ID,
				VendorName:  v.VendorName,
				PaymentID:   p.ID,
				Description: p.Description,
				Amount:      p.Amount,
				Currency:    currency,
				DueDate:     p.DueDate,
				Status:      status,
			})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].DueDate != upcoming[j].DueDate {
			return upcoming[i].DueDate < upcoming[j].DueDate
		}
		return upcoming[i].Status == StatusOverdue && upcoming[j].Status != StatusOverdue
	})
	return upcoming, nil
}
