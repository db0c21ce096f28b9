package http

import (
	"errors"

	"bridezilla/internal/core"
)

var validationErrors = []error{
	core.ErrEmptyVendorName,
	core.ErrEmptyVendorType,
	core.ErrInvalidCurrency,
	core.ErrInvalidAmount,
	core.ErrInvalidDate,
	core.ErrInvalidName,
	core.ErrInvalidEmail,
	core.ErrInvalidPhone,
	core.ErrTooManyPlusOnes,
	core.ErrEmptyCoupleNames,
	core.ErrInvalidPaymentType,
	core.ErrInvalidSharedStatus,
}

// isValidationError distinguishes bad input (4xx) from store failures (5xx).
func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
