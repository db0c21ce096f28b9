// Package services provides business logic and orchestration between the
// store ports and the messaging layer.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"bridezilla/internal/amqp"
	"bridezilla/internal/core"
	"bridezilla/internal/store"
)

// Activity actions recorded for the planner feed.
const (
	ActionVendorCreated     = "vendor_created"
	ActionVendorUpdated     = "vendor_updated"
	ActionVendorDeleted     = "vendor_deleted"
	ActionPaymentMarkedPaid = "payment_marked_paid"
)

// VendorService orchestrates vendor writes across the store and AMQP.
// Store writes are authoritative; activity publishing is best effort and
// never fails the caller's request.
type VendorService struct {
	backend    store.Backend
	amqpClient *amqp.Client
}

func NewVendorService(backend store.Backend, amqpClient *amqp.Client) *VendorService {
	return &VendorService{
		backend:    backend,
		amqpClient: amqpClient,
	}
}

// CreateVendor validates and saves a vendor, then announces the activity.
func (s *VendorService) CreateVendor(ctx context.Context, v core.Vendor) (core.Vendor, error) {
	v.VendorName = core.SanitizeText(v.VendorName)
	v.Notes = core.SanitizeText(v.Notes)
	if err := v.Validate(); err != nil {
		return core.Vendor{}, err
	}

	created, err := s.backend.CreateVendor(ctx, v)
	if err != nil {
		return core.Vendor{}, fmt.Errorf("save vendor: %w", err)
	}

	s.announce(ctx, created.ID, "", ActionVendorCreated)
	return created, nil
}

// UpdateVendor merges a field patch into the vendor. A nil result means no
// vendor matched.
func (s *VendorService) UpdateVendor(ctx context.Context, id string, patch map[string]any) (*core.Vendor, error) {
	updated, err := s.backend.UpdateVendor(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	if updated == nil {
		return nil, nil
	}

	action := ActionVendorUpdated
	if _, ok := patch["payments"]; ok {
		action = ActionPaymentMarkedPaid
	}
	s.announce(ctx, updated.ID, "", action)
	return updated, nil
}

// DeleteVendor removes a vendor and announces the deletion.
func (s *VendorService) DeleteVendor(ctx context.Context, id string) error {
	if err := s.backend.DeleteVendor(ctx, id); err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	s.announce(ctx, id, "", ActionVendorDeleted)
	return nil
}

// announce records the activity row and publishes the AMQP message. When no
// broker is configured the row is still recorded so the feed works locally.
func (s *VendorService) announce(ctx context.Context, vendorID, coupleID, action string) {
	if _, err := s.backend.RecordActivity(ctx, core.ActivityEvent{
		VendorID: vendorID,
		CoupleID: coupleID,
		Action:   action,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to record vendor activity",
			"vendor_id", vendorID, "action", action, "error", err)
	}

	if s.amqpClient == nil {
		return
	}
	if err := s.amqpClient.PublishVendorActivity(ctx, vendorID, coupleID, action); err != nil {
		slog.ErrorContext(ctx, "Failed to publish vendor activity",
			"vendor_id", vendorID, "action", action, "error", err)
	}
}

// Close releases the AMQP connection, if any.
func (s *VendorService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp: %w", err)
		}
	}
	return nil
}
