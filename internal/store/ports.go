// Package store defines the typed persistence ports consumed by the HTTP
// layer and services. Two backends implement them: the localstore demo
// adapter and the sqlite repository. Not-found lookups resolve to nil or
// empty results rather than errors.
package store

import (
	"context"

	"bridezilla/internal/core"
)

type (
	VendorStore interface {
		ListVendors(ctx context.Context) ([]core.Vendor, error)
		GetVendor(ctx context.Context, id string) (*core.Vendor, error)
		CreateVendor(ctx context.Context, v core.Vendor) (core.Vendor, error)
		// UpdateVendor merges patch into the vendor; nil result means no match.
		UpdateVendor(ctx context.Context, id string, patch map[string]any) (*core.Vendor, error)
		DeleteVendor(ctx context.Context, id string) error
	}

	RSVPStore interface {
		ListRSVPs(ctx context.Context) ([]core.RSVP, error)
		CreateRSVP(ctx context.Context, r core.RSVP) (core.RSVP, error)
	}

	CoupleStore interface {
		// ListCouples returns active couples, newest first.
		ListCouples(ctx context.Context) ([]core.PlannerCouple, error)
		GetCouple(ctx context.Context, id string) (*core.PlannerCouple, error)
		// GetCoupleByShareLink resolves only active couples.
		GetCoupleByShareLink(ctx context.Context, shareLinkID string) (*core.PlannerCouple, error)
		CreateCouple(ctx context.Context, c core.PlannerCouple) (core.PlannerCouple, error)
		UpdateCouple(ctx context.Context, id string, patch map[string]any) (*core.PlannerCouple, error)
		// DeactivateCouple soft-deletes: the couple disappears from listings
		// and its share link stops resolving.
		DeactivateCouple(ctx context.Context, id string) error
		// TouchCoupleActivity refreshes the couple's last_activity stamp.
		TouchCoupleActivity(ctx context.Context, id string) error
	}

	SharedVendorStore interface {
		// ListSharedVendors returns a couple's recommendations ordered by
		// vendor type then vendor name.
		ListSharedVendors(ctx context.Context, coupleID string) ([]core.SharedVendor, error)
		AddSharedVendor(ctx context.Context, sv core.SharedVendor) (core.SharedVendor, error)
		UpdateSharedVendor(ctx context.Context, id string, patch map[string]any) (*core.SharedVendor, error)
		RemoveSharedVendor(ctx context.Context, id string) error
	}

	ActivityStore interface {
		RecordActivity(ctx context.Context, ev core.ActivityEvent) (core.ActivityEvent, error)
		ListVendorActivity(ctx context.Context, vendorID string) ([]core.ActivityEvent, error)
	}

	// Backend bundles every port a fully-wired server needs.
	Backend interface {
		VendorStore
		RSVPStore
		CoupleStore
		SharedVendorStore
		ActivityStore
	}

	// DemoController is implemented by backends that support demo reset.
	DemoController interface {
		ResetDemo()
	}
)
