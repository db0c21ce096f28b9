package core

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// PaymentType distinguishes how a vendor payment is made.
type PaymentType string

const (
	PaymentCash         PaymentType = "cash"
	PaymentBankTransfer PaymentType = "bank_transfer"
)

// SharedVendorStatus tracks couple feedback on a planner recommendation.
type SharedVendorStatus string

const (
	SharedRecommended SharedVendorStatus = "recommended"
	SharedLiked       SharedVendorStatus = "liked"
	SharedDismissed   SharedVendorStatus = "dismissed"
	SharedBooked      SharedVendorStatus = "booked"
)

// DateLayout is the calendar-date format used for due dates, paid dates and
// wedding dates. No time component.
const DateLayout = "2006-01-02"

type (
	// Payment is a single committed or refundable money movement tied to a
	// vendor. Amount is in the vendor's currency; AmountConverted, when
	// present, is the authoritative value in the portfolio's reporting
	// currency.
	Payment struct {
		ID                      string      `json:"id"`
		Description             string      `json:"description"`
		Amount                  float64     `json:"amount"`
		AmountCurrency          string      `json:"amount_currency"`
		AmountConverted         *float64    `json:"amount_converted,omitempty"`
		AmountConvertedCurrency string      `json:"amount_converted_currency,omitempty"`
		PaymentType             PaymentType `json:"payment_type"`
		DueDate                 string      `json:"due_date,omitempty"`
		Paid                    bool        `json:"paid"`
		PaidDate                string      `json:"paid_date,omitempty"`
		Refundable              bool        `json:"refundable"`
	}

	// Vendor is a wedding service provider with contact info and payments.
	Vendor struct {
		ID                 string    `json:"id"`
		VendorName         string    `json:"vendor_name"`
		VendorType         string    `json:"vendor_type"`
		ContactName        string    `json:"contact_name,omitempty"`
		Email              string    `json:"email,omitempty"`
		Phone              string    `json:"phone,omitempty"`
		Website            string    `json:"website,omitempty"`
		VendorCurrency     string    `json:"vendor_currency"`
		ContractRequired   bool      `json:"contract_required"`
		ContractSigned     bool      `json:"contract_signed"`
		ContractSignedDate string    `json:"contract_signed_date,omitempty"`
		ContractURL        string    `json:"contract_url,omitempty"`
		Notes              string    `json:"notes,omitempty"`
		Payments           []Payment `json:"payments"`
		CreatedAt          string    `json:"created_at,omitempty"`
		UpdatedAt          string    `json:"updated_at,omitempty"`
	}

	// Guest is a plus-one on an RSVP.
	Guest struct {
		Name string `json:"name"`
	}

	// RSVP is a guest submission. Resubmissions create new records; there is
	// no upsert-by-email.
	RSVP struct {
		ID             string  `json:"id"`
		Name           string  `json:"name"`
		Email          string  `json:"email"`
		Phone          string  `json:"phone"`
		Attending      bool    `json:"attending"`
		NumberOfGuests int     `json:"number_of_guests"`
		Guests         []Guest `json:"guests"`
		CreatedAt      string  `json:"created_at,omitempty"`
	}

	// PlannerCouple is one entry in a planner's roster. ShareLinkID is the
	// login-free handle for the couple's shared workspace.
	PlannerCouple struct {
		ID              string `json:"id"`
		CoupleNames     string `json:"couple_names"`
		CoupleEmail     string `json:"couple_email,omitempty"`
		WeddingDate     string `json:"wedding_date,omitempty"`
		WeddingLocation string `json:"wedding_location,omitempty"`
		Notes           string `json:"notes,omitempty"`
		ShareLinkID     string `json:"share_link_id"`
		IsActive        bool   `json:"is_active"`
		LastActivity    string `json:"last_activity,omitempty"`
		CreatedAt       string `json:"created_at,omitempty"`
		UpdatedAt       string `json:"updated_at,omitempty"`
	}

	// SharedVendor is a planner-curated recommendation visible to a couple
	// through their shared workspace.
	SharedVendor struct {
		ID              string             `json:"id"`
		PlannerCoupleID string             `json:"planner_couple_id"`
		VendorName      string             `json:"vendor_name"`
		VendorType      string             `json:"vendor_type"`
		ContactName     string             `json:"contact_name,omitempty"`
		Email           string             `json:"email,omitempty"`
		Phone           string             `json:"phone,omitempty"`
		Website         string             `json:"website,omitempty"`
		Instagram       string             `json:"instagram,omitempty"`
		Location        string             `json:"location,omitempty"`
		Tags            []string           `json:"tags,omitempty"`
		VendorCurrency  string             `json:"vendor_currency,omitempty"`
		EstimatedCost   *float64           `json:"estimated_cost,omitempty"`
		PlannerNote     string             `json:"planner_note,omitempty"`
		Status          SharedVendorStatus `json:"status"`
		CreatedAt       string             `json:"created_at,omitempty"`
		UpdatedAt       string             `json:"updated_at,omitempty"`
	}

	// ActivityEvent records a vendor mutation for the planner activity feed.
	ActivityEvent struct {
		ID        string `json:"id"`
		VendorID  string `json:"vendor_id"`
		CoupleID  string `json:"couple_id,omitempty"`
		Action    string `json:"action"`
		CreatedAt string `json:"created_at,omitempty"`
	}
)

var (
	ErrEmptyVendorName     = errors.New("empty vendor name")
	ErrEmptyVendorType     = errors.New("empty vendor type")
	ErrInvalidCurrency     = errors.New("invalid currency code")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidName         = errors.New("name must be between 2 and 100 characters")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidPhone        = errors.New("phone number must have at least 10 digits")
	ErrTooManyPlusOnes     = errors.New("at most 2 plus-ones allowed")
	ErrEmptyCoupleNames    = errors.New("couple names are required")
	ErrMixedCurrencies     = errors.New("payments carry mixed currencies")
	ErrInvalidPaymentType  = errors.New("invalid payment type")
	ErrInvalidSharedStatus = errors.New("invalid shared vendor status")
)

// Currencies supported for vendor records and payment conversions.
var Currencies = map[string]bool{
	"CAD": true,
	"USD": true,
	"EUR": true,
	"GBP": true,
	"JPY": true,
	"AUD": true,
	"CHF": true,
}

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPhone reports whether s carries at least 10 digits.
func IsValidPhone(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}

// IsValidName reports whether the trimmed name is 2..100 characters.
func IsValidName(s string) bool {
	n := len(strings.TrimSpace(s))
	return n >= 2 && n <= 100
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func (p Payment) Validate() error {
	if p.Amount < 0 {
		return ErrInvalidAmount
	}
	if p.AmountCurrency != "" && !Currencies[p.AmountCurrency] {
		return ErrInvalidCurrency
	}
	if p.AmountConvertedCurrency != "" && !Currencies[p.AmountConvertedCurrency] {
		return ErrInvalidCurrency
	}
	switch p.PaymentType {
	case "", PaymentCash, PaymentBankTransfer:
	default:
		return ErrInvalidPaymentType
	}
	if p.DueDate != "" && !validDate(p.DueDate) {
		return ErrInvalidDate
	}
	if p.PaidDate != "" && !validDate(p.PaidDate) {
		return ErrInvalidDate
	}
	return nil
}

func (v Vendor) Validate() error {
	if strings.TrimSpace(v.VendorName) == "" {
		return ErrEmptyVendorName
	}
	if strings.TrimSpace(v.VendorType) == "" {
		return ErrEmptyVendorType
	}
	if v.VendorCurrency != "" && !Currencies[v.VendorCurrency] {
		return ErrInvalidCurrency
	}
	for _, p := range v.Payments {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidationError is a field-level validation failure reported to API callers.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateRSVP checks a guest submission and returns every failing field.
func ValidateRSVP(r RSVP) []ValidationError {
	var errs []ValidationError
	if !IsValidName(r.Name) {
		errs = append(errs, ValidationError{Field: "name", Message: ErrInvalidName.Error()})
	}
	if !IsValidEmail(r.Email) {
		errs = append(errs, ValidationError{Field: "email", Message: ErrInvalidEmail.Error()})
	}
	if !IsValidPhone(r.Phone) {
		errs = append(errs, ValidationError{Field: "phone", Message: ErrInvalidPhone.Error()})
	}
	if len(r.Guests) > 2 {
		errs = append(errs, ValidationError{Field: "guests", Message: ErrTooManyPlusOnes.Error()})
	}
	if r.NumberOfGuests < 1 {
		errs = append(errs, ValidationError{Field: "number_of_guests", Message: "must be at least 1"})
	}
	return errs
}

func (c PlannerCouple) Validate() error {
	if strings.TrimSpace(c.CoupleNames) == "" {
		return ErrEmptyCoupleNames
	}
	if c.CoupleEmail != "" && !IsValidEmail(c.CoupleEmail) {
		return ErrInvalidEmail
	}
	if c.WeddingDate != "" && !validDate(c.WeddingDate) {
		return ErrInvalidDate
	}
	return nil
}

func (sv SharedVendor) Validate() error {
	if strings.TrimSpace(sv.VendorName) == "" {
		return ErrEmptyVendorName
	}
	if strings.TrimSpace(sv.VendorType) == "" {
		return ErrEmptyVendorType
	}
	if sv.VendorCurrency != "" && !Currencies[sv.VendorCurrency] {
		return ErrInvalidCurrency
	}
	switch sv.Status {
	case "", SharedRecommended, SharedLiked, SharedDismissed, SharedBooked:
	default:
		return ErrInvalidSharedStatus
	}
	return nil
}

// SanitizeText trims whitespace, strips angle brackets and caps free-text
// input at 500 characters.
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return -1
		}
		return r
	}, s)
	if len(s) > 500 {
		s = s[:500]
	}
	return s
}
