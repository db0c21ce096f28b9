package services

import (
	"time"

	"bridezilla/internal/core"
)

// PaymentStatus is the reminder bucket a payment falls into.
type PaymentStatus string

const (
	StatusPaid      PaymentStatus = "paid"
	StatusOverdue   PaymentStatus = "overdue"
	StatusDueSoon   PaymentStatus = "due_soon"
	StatusScheduled PaymentStatus = "scheduled"
)

// DuenessRule decides whether a payment belongs to a status bucket.
// windowDays bounds the due-soon horizon.
type DuenessRule interface {
	Matches(p core.Payment, now time.Time, windowDays int) bool
}

// PaidRule matches payments that are already settled.
type PaidRule struct{}

func (PaidRule) Matches(p core.Payment, _ time.Time, _ int) bool {
	return p.Paid
}

// OverdueRule matches unpaid payments whose due date has passed.
type OverdueRule struct{}

func (OverdueRule) Matches(p core.Payment, now time.Time, _ int) bool {
	due, ok := parseDueDate(p)
	if !ok {
		return false
	}
	return due.Before(startOfDay(now))
}

// DueSoonRule matches unpaid payments due within the reminder window.
type DueSoonRule struct{}

func (DueSoonRule) Matches(p core.Payment, now time.Time, windowDays int) bool {
	due, ok := parseDueDate(p)
	if !ok {
		return false
	}
	today := startOfDay(now)
	horizon := today.AddDate(0, 0, windowDays)
	return !due.Before(today) && !due.After(horizon)
}

func parseDueDate(p core.Payment) (time.Time, bool) {
	if p.DueDate == "" {
		return time.Time{}, false
	}
	due, err := time.Parse(core.DateLayout, p.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// duenessRules is evaluated in order; the first match wins. Payments with
// no usable due date fall through to scheduled.
var duenessRules = []struct {
	status PaymentStatus
	rule   DuenessRule
}{
	{StatusPaid, PaidRule{}},
	{StatusOverdue, OverdueRule{}},
	{StatusDueSoon, DueSoonRule{}},
}

// ClassifyPayment returns the reminder bucket for a payment.
func ClassifyPayment(p core.Payment, now time.Time, windowDays int) PaymentStatus {
	for _, entry := range duenessRules {
		if entry.rule.Matches(p, now, windowDays) {
			return entry.status
		}
	}
	return StatusScheduled
}
