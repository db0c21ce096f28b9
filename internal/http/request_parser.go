package http

import (
	"strings"

	"github.com/google/uuid"

	"bridezilla/internal/core"
)

// vendorPatchColumns is the allow-list for vendor update payloads. Anything
// outside it is dropped before the patch reaches the store, so a client can
// never overwrite identity or unknown columns.
var vendorPatchColumns = map[string]bool{
	"vendor_name":          true,
	"vendor_type":          true,
	"contact_name":         true,
	"email":                true,
	"phone":                true,
	"website":              true,
	"vendor_currency":      true,
	"contract_required":    true,
	"contract_signed":      true,
	"contract_signed_date": true,
	"contract_url":         true,
	"notes":                true,
	"payments":             true,
}

var couplePatchColumns = map[string]bool{
	"couple_names":     true,
	"couple_email":     true,
	"wedding_date":     true,
	"wedding_location": true,
	"notes":            true,
	"is_active":        true,
}

var sharedVendorPatchColumns = map[string]bool{
	"vendor_name":     true,
	"vendor_type":     true,
	"contact_name":    true,
	"email":           true,
	"phone":           true,
	"website":         true,
	"instagram":       true,
	"location":        true,
	"tags":            true,
	"vendor_currency": true,
	"estimated_cost":  true,
	"planner_note":    true,
	"status":          true,
}

func filterPatch(patch map[string]any, allowed map[string]bool) map[string]any {
	out := make(map[string]any, len(patch))
	for k, v := range patch {
		if allowed[k] {
			out[k] = v
		}
	}
	return out
}

// assignPaymentIDs gives client-drafted payments real ids. The web client
// marks unsaved payments with a "new-" prefix.
func assignPaymentIDs(payments []core.Payment) {
	for i := range payments {
		if payments[i].ID == "" || strings.HasPrefix(payments[i].ID, "new-") {
			payments[i].ID = uuid.NewString()
		}
	}
}

// assignPaymentIDsInPatch does the same for the loosely-typed payments list
// inside an update payload.
func assignPaymentIDsInPatch(patch map[string]any) {
	raw, ok := patch["payments"].([]any)
	if !ok {
		return
	}
	for _, item := range raw {
		p, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, _ := p["id"].(string)
		if id == "" || strings.HasPrefix(id, "new-") {
			p["id"] = uuid.NewString()
		}
	}
}
