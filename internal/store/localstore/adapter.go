package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bridezilla/internal/core"
)

// Adapter exposes the record store through the typed ports in
// internal/store, converting between domain structs and loosely-typed
// records at the boundary.
type Adapter struct {
	store *Store
}

func NewAdapter(store *Store) *Adapter {
	return &Adapter{store: store}
}

// Store returns the underlying record store, used by the demo reset
// endpoint.
func (a *Adapter) Store() *Store {
	return a.store
}

// ResetDemo reseeds the demo dataset.
func (a *Adapter) ResetDemo() {
	a.store.ResetDemo()
}

func toRecord(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	// The store owns identity and timestamps.
	delete(rec, "id")
	delete(rec, "created_at")
	delete(rec, "updated_at")
	return rec, nil
}

func fromRecord[T any](rec Record) (T, error) {
	var out T
	raw, err := json.Marshal(rec)
	if err != nil {
		return out, fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode record: %w", err)
	}
	return out, nil
}

func fromRecords[T any](recs []Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		item, err := fromRecord[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (a *Adapter) ListVendors(_ context.Context) ([]core.Vendor, error) {
	return fromRecords[core.Vendor](a.store.Select(TableVendors).Collect())
}

func (a *Adapter) GetVendor(_ context.Context, id string) (*core.Vendor, error) {
	rec := a.store.Select(TableVendors).Eq("id", id).Single()
	if rec == nil {
		return nil, nil
	}
	v, err := fromRecord[core.Vendor](rec)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *Adapter) CreateVendor(_ context.Context, v core.Vendor) (core.Vendor, error) {
	rec, err := toRecord(v)
	if err != nil {
		return core.Vendor{}, err
	}
	stored := a.store.Insert(TableVendors, rec)
	return fromRecord[core.Vendor](stored)
}

func (a *Adapter) UpdateVendor(_ context.Context, id string, patch map[string]any) (*core.Vendor, error) {
	rec := a.store.Update(TableVendors, patch).Eq("id", id)
	if rec == nil {
		return nil, nil
	}
	v, err := fromRecord[core.Vendor](rec)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *Adapter) DeleteVendor(_ context.Context, id string) error {
	a.store.Delete(TableVendors).Eq("id", id)
	return nil
}

func (a *Adapter) ListRSVPs(_ context.Context) ([]core.RSVP, error) {
	return fromRecords[core.RSVP](a.store.Select(TableRSVPs).Collect())
}

func (a *Adapter) CreateRSVP(_ context.Context, r core.RSVP) (core.RSVP, error) {
	rec, err := toRecord(r)
	if err != nil {
		return core.RSVP{}, err
	}
	stored := a.store.Insert(TableRSVPs, rec)
	return fromRecord[core.RSVP](stored)
}

func (a *Adapter) ListCouples(_ context.Context) ([]core.PlannerCouple, error) {
	recs := a.store.Select(TablePlannerCouples).
		Eq("is_active", true).
		OrderBy("created_at", false).
		Collect()
	return fromRecords[core.PlannerCouple](recs)
}

func (a *Adapter) GetCouple(_ context.Context, id string) (*core.PlannerCouple, error) {
	rec := a.store.Select(TablePlannerCouples).Eq("id", id).Single()
	if rec == nil {
		return nil, nil
	}
	c, err := fromRecord[core.PlannerCouple](rec)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *Adapter) GetCoupleByShareLink(_ context.Context, shareLinkID string) (*core.PlannerCouple, error) {
	rec := a.store.Select(TablePlannerCouples).
		Eq("share_link_id", shareLinkID).
		Eq("is_active", true).
		Single()
	if rec == nil {
		return nil, nil
	}
	c, err := fromRecord[core.PlannerCouple](rec)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *Adapter) CreateCouple(_ context.Context, c core.PlannerCouple) (core.PlannerCouple, error) {
	rec, err := toRecord(c)
	if err != nil {
		return core.PlannerCouple{}, err
	}
	stored := a.store.Insert(TablePlannerCouples, rec)
	return fromRecord[core.PlannerCouple](stored)
}

func (a *Adapter) UpdateCouple(_ context.Context, id string, patch map[string]any) (*core.PlannerCouple, error) {
	rec := a.store.Update(TablePlannerCouples, patch).Eq("id", id)
	if rec == nil {
		return nil, nil
	}
	c, err := fromRecord[core.PlannerCouple](rec)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *Adapter) DeactivateCouple(_ context.Context, id string) error {
	a.store.Update(TablePlannerCouples, Record{"is_active": false}).Eq("id", id)
	return nil
}

func (a *Adapter) TouchCoupleActivity(_ context.Context, id string) error {
	now := a.store.now().UTC().Format(time.RFC3339)
	a.store.Update(TablePlannerCouples, Record{"last_activity": now}).Eq("id", id)
	return nil
}

func (a *Adapter) ListSharedVendors(_ context.Context, coupleID string) ([]core.SharedVendor, error) {
	recs := a.store.Select(TableSharedVendors).
		Eq("planner_couple_id", coupleID).
		OrderBy("vendor_type", true).
		OrderBy("vendor_name", true).
		Collect()
	return fromRecords[core.SharedVendor](recs)
}

func (a *Adapter) AddSharedVendor(_ context.Context, sv core.SharedVendor) (core.SharedVendor, error) {
	rec, err := toRecord(sv)
	if err != nil {
		return core.SharedVendor{}, err
	}
	stored := a.store.Insert(TableSharedVendors, rec)
	return fromRecord[core.SharedVendor](stored)
}

func (a *Adapter) UpdateSharedVendor(_ context.Context, id string, patch map[string]any) (*core.SharedVendor, error) {
	rec := a.store.Update(TableSharedVendors, patch).Eq("id", id)
	if rec == nil {
		return nil, nil
	}
	sv, err := fromRecord[core.SharedVendor](rec)
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

func (a *Adapter) RemoveSharedVendor(_ context.Context, id string) error {
	a.store.Delete(TableSharedVendors).Eq("id", id)
	return nil
}

func (a *Adapter) RecordActivity(_ context.Context, ev core.ActivityEvent) (core.ActivityEvent, error) {
	rec, err := toRecord(ev)
	if err != nil {
		return core.ActivityEvent{}, err
	}
	stored := a.store.Insert(TableVendorActivity, rec)
	return fromRecord[core.ActivityEvent](stored)
}

func (a *Adapter) ListVendorActivity(_ context.Context, vendorID string) ([]core.ActivityEvent, error) {
	recs := a.store.Select(TableVendorActivity).
		Eq("vendor_id", vendorID).
		OrderBy("created_at", false).
		Collect()
	return fromRecords[core.ActivityEvent](recs)
}
