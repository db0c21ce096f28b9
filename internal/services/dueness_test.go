package services

import (
	"testing"
	"time"

	"bridezilla/internal/core"
)

func TestClassifyPayment(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	window := 7

	tests := []struct {
		name    string
		payment core.Payment
		want    PaymentStatus
	}{
		{
			name:    "paid payment",
			payment: core.Payment{Paid: true, DueDate: "2026-06-01"},
			want:    StatusPaid,
		},
		{
			name:    "paid wins over overdue",
			payment: core.Payment{Paid: true, DueDate: "2026-01-01"},
			want:    StatusPaid,
		},
		{
			name:    "due yesterday is overdue",
			payment: core.Payment{DueDate: "2026-06-14"},
			want:    StatusOverdue,
		},
		{
			name:    "due months ago is overdue",
			payment: core.Payment{DueDate: "2026-01-10"},
			want:    StatusOverdue,
		},
		{
			name:    "due today is due soon",
			payment: core.Payment{DueDate: "2026-06-15"},
			want:    StatusDueSoon,
		},
		{
			name:    "due at window edge is due soon",
			payment: core.Payment{DueDate: "2026-06-22"},
			want:    StatusDueSoon,
		},
		{
			name:    "due past window is scheduled",
			payment: core.Payment{DueDate: "2026-06-23"},
			want:    StatusScheduled,
		},
		{
			name:    "no due date is scheduled",
			payment: core.Payment{},
			want:    StatusScheduled,
		},
		{
			name:    "unparseable due date is scheduled",
			payment: core.Payment{DueDate: "soonish"},
			want:    StatusScheduled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPayment(tt.payment, now, window)
			if got != tt.want {
				t.Errorf("ClassifyPayment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyPaymentWindowSize(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	p := core.Payment{DueDate: "2026-06-25"}

	if got := ClassifyPayment(p, now, 7); got != StatusScheduled {
		t.Errorf("7-day window: got %v, want scheduled", got)
	}
	if got := ClassifyPayment(p, now, 14); got != StatusDueSoon {
		t.Errorf("14-day window: got %v, want due_soon", got)
	}
}
