// Package worker processes vendor activity messages off the broker: it
// refreshes planner roster activity stamps and mirrors events into the
// per-vendor feed when the publisher and the feed live on different stores.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"bridezilla/internal/amqp"
	"bridezilla/internal/core"
	"bridezilla/internal/store"
)

// ActivityWorker consumes vendor activity messages.
type ActivityWorker struct {
	backend store.Backend

	// mirrorFeed writes consumed events into the vendor activity feed.
	// Disabled when the API server and worker share a store, since the
	// server already records events at mutation time.
	mirrorFeed bool
}

func NewActivityWorker(backend store.Backend, mirrorFeed bool) *ActivityWorker {
	return &ActivityWorker{
		backend:    backend,
		mirrorFeed: mirrorFeed,
	}
}

// HandleActivityMessage processes one message. Errors are returned so the
// consumer can requeue; malformed messages never reach this point.
func (w *ActivityWorker) HandleActivityMessage(ctx context.Context, msg *amqp.VendorActivityMessage) error {
	slog.InfoContext(ctx, "Processing vendor activity",
		"vendor_id", msg.VendorID,
		"couple_id", msg.CoupleID,
		"action", msg.Action)

	if msg.CoupleID != "" {
		if err := w.backend.TouchCoupleActivity(ctx, msg.CoupleID); err != nil {
			return fmt.Errorf("touch couple activity: %w", err)
		}
	}

	if w.mirrorFeed {
		_, err := w.backend.RecordActivity(ctx, core.ActivityEvent{
			VendorID: msg.VendorID,
			CoupleID: msg.CoupleID,
			Action:   msg.Action,
		})
		if err != nil {
			return fmt.Errorf("record activity event: %w", err)
		}
	}

	return nil
}
