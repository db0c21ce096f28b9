// Package storage implements the typed store ports over sqlite for the
// production (non-demo) path. Records are stored as JSON documents beside
// a few indexed columns, matching the jsonb-heavy schema of the hosted
// database this service fronts.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"bridezilla/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func encode(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return string(raw), nil
}

func decodeInto(data string, out any) error {
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}

// applyPatch merges a field patch into a stored JSON document, protecting
// store-owned identity fields.
func applyPatch(data string, patch map[string]any, updatedAt string) (string, error) {
	var doc map[string]any
	if err := decodeInto(data, &doc); err != nil {
		return "", err
	}
	for k, v := range patch {
		if k == "id" || k == "created_at" {
			continue
		}
		doc[k] = v
	}
	doc["updated_at"] = updatedAt
	return encode(doc)
}

// Vendors

func (r *SQLiteRepository) ListVendors(ctx context.Context) ([]core.Vendor, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM vendors ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []core.Vendor
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		var v core.Vendor
		if err := decodeInto(data, &v); err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *SQLiteRepository) GetVendor(ctx context.Context, id string) (*core.Vendor, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM vendors WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	var v core.Vendor
	if err := decodeInto(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *SQLiteRepository) CreateVendor(ctx context.Context, v core.Vendor) (core.Vendor, error) {
	now := nowStamp()
	v.ID = uuid.NewString()
	v.CreatedAt = now
	v.UpdatedAt = now
	for i := range v.Payments {
		if v.Payments[i].ID == "" {
			v.Payments[i].ID = uuid.NewString()
		}
	}

	data, err := encode(v)
	if err != nil {
		return core.Vendor{}, err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO vendors (id, data, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		v.ID, data, now, now)
	if err != nil {
		return core.Vendor{}, fmt.Errorf("create vendor: %w", err)
	}

	slog.InfoContext(ctx, "Vendor saved",
		"id", v.ID,
		"vendor_name", v.VendorName,
		"vendor_type", v.VendorType,
		"payments", len(v.Payments))
	return v, nil
}

func (r *SQLiteRepository) UpdateVendor(ctx context.Context, id string, patch map[string]any) (*core.Vendor, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM vendors WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load vendor for update: %w", err)
	}

	now := nowStamp()
	merged, err := applyPatch(data, patch, now)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE vendors SET data = ?, updated_at = ? WHERE id = ?`, merged, now, id); err != nil {
		return nil, fmt.Errorf("update vendor: %w", err)
	}

	var v core.Vendor
	if err := decodeInto(merged, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *SQLiteRepository) DeleteVendor(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vendors WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}

// RSVPs

func (r *SQLiteRepository) ListRSVPs(ctx context.Context) ([]core.RSVP, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM rsvps ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	defer rows.Close()

	var rsvps []core.RSVP
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}
		var rec core.RSVP
		if err := decodeInto(data, &rec); err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rec)
	}
	return rsvps, rows.Err()
}

func (r *SQLiteRepository) CreateRSVP(ctx context.Context, rec core.RSVP) (core.RSVP, error) {
	now := nowStamp()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now

	data, err := encode(rec)
	if err != nil {
		return core.RSVP{}, err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO rsvps (id, data, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		rec.ID, data, now, now)
	if err != nil {
		return core.RSVP{}, fmt.Errorf("create rsvp: %w", err)
	}
	return rec, nil
}

// Planner couples

func (r *SQLiteRepository) ListCouples(ctx context.Context) ([]core.PlannerCouple, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM planner_couples WHERE is_active = 1 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list couples: %w", err)
	}
	defer rows.Close()

	var couples []core.PlannerCouple
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan couple: %w", err)
		}
		var c core.PlannerCouple
		if err := decodeInto(data, &c); err != nil {
			return nil, err
		}
		couples = append(couples, c)
	}
	return couples, rows.Err()
}

func (r *SQLiteRepository) GetCouple(ctx context.Context, id string) (*core.PlannerCouple, error) {
	return r.coupleWhere(ctx, `SELECT data FROM planner_couples WHERE id = ?`, id)
}

func (r *SQLiteRepository) GetCoupleByShareLink(ctx context.Context, shareLinkID string) (*core.PlannerCouple, error) {
	return r.coupleWhere(ctx,
		`SELECT data FROM planner_couples WHERE share_link_id = ? AND is_active = 1`, shareLinkID)
}

func (r *SQLiteRepository) coupleWhere(ctx context.Context, query string, arg any) (*core.PlannerCouple, error) {
	var data string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get couple: %w", err)
	}
	var c core.PlannerCouple
	if err := decodeInto(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLiteRepository) CreateCouple(ctx context.Context, c core.PlannerCouple) (core.PlannerCouple, error) {
	now := nowStamp()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	c.LastActivity = now

	data, err := encode(c)
	if err != nil {
		return core.PlannerCouple{}, err
	}
	active := 0
	if c.IsActive {
		active = 1
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO planner_couples (id, share_link_id, is_active, last_activity, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ShareLinkID, active, now, data, now, now)
	if err != nil {
		return core.PlannerCouple{}, fmt.Errorf("create couple: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) UpdateCouple(ctx context.Context, id string, patch map[string]any) (*core.PlannerCouple, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM planner_couples WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load couple for update: %w", err)
	}

	now := nowStamp()
	merged, err := applyPatch(data, patch, now)
	if err != nil {
		return nil, err
	}
	var c core.PlannerCouple
	if err := decodeInto(merged, &c); err != nil {
		return nil, err
	}
	active := 0
	if c.IsActive {
		active = 1
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE planner_couples SET data = ?, is_active = ?, last_activity = ?, updated_at = ? WHERE id = ?`,
		merged, active, c.LastActivity, now, id); err != nil {
		return nil, fmt.Errorf("update couple: %w", err)
	}
	return &c, nil
}

func (r *SQLiteRepository) DeactivateCouple(ctx context.Context, id string) error {
	_, err := r.UpdateCouple(ctx, id, map[string]any{"is_active": false})
	if err != nil {
		return fmt.Errorf("deactivate couple: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) TouchCoupleActivity(ctx context.Context, id string) error {
	_, err := r.UpdateCouple(ctx, id, map[string]any{"last_activity": nowStamp()})
	if err != nil {
		return fmt.Errorf("touch couple activity: %w", err)
	}
	return nil
}

// Shared vendors

func (r *SQLiteRepository) ListSharedVendors(ctx context.Context, coupleID string) ([]core.SharedVendor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM shared_vendors WHERE planner_couple_id = ?
		 ORDER BY json_extract(data, '$.vendor_type'), json_extract(data, '$.vendor_name')`,
		coupleID)
	if err != nil {
		return nil, fmt.Errorf("list shared vendors: %w", err)
	}
	defer rows.Close()

	var shared []core.SharedVendor
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan shared vendor: %w", err)
		}
		var sv core.SharedVendor
		if err := decodeInto(data, &sv); err != nil {
			return nil, err
		}
		shared = append(shared, sv)
	}
	return shared, rows.Err()
}

func (r *SQLiteRepository) AddSharedVendor(ctx context.Context, sv core.SharedVendor) (core.SharedVendor, error) {
	now := nowStamp()
	sv.ID = uuid.NewString()
	sv.CreatedAt = now
	sv.UpdatedAt = now
	if sv.Status == "" {
		sv.Status = core.SharedRecommended
	}

	data, err := encode(sv)
	if err != nil {
		return core.SharedVendor{}, err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO shared_vendors (id, planner_couple_id, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sv.ID, sv.PlannerCoupleID, data, now, now)
	if err != nil {
		return core.SharedVendor{}, fmt.Errorf("add shared vendor: %w", err)
	}
	return sv, nil
}

func (r *SQLiteRepository) UpdateSharedVendor(ctx context.Context, id string, patch map[string]any) (*core.SharedVendor, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM shared_vendors WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load shared vendor for update: %w", err)
	}

	now := nowStamp()
	merged, err := applyPatch(data, patch, now)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE shared_vendors SET data = ?, updated_at = ? WHERE id = ?`, merged, now, id); err != nil {
		return nil, fmt.Errorf("update shared vendor: %w", err)
	}
	var sv core.SharedVendor
	if err := decodeInto(merged, &sv); err != nil {
		return nil, err
	}
	return &sv, nil
}

func (r *SQLiteRepository) RemoveSharedVendor(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shared_vendors WHERE id = ?`, id); err != nil {
		return fmt.Errorf("remove shared vendor: %w", err)
	}
	return nil
}

// Activity feed

func (r *SQLiteRepository) RecordActivity(ctx context.Context, ev core.ActivityEvent) (core.ActivityEvent, error) {
	now := nowStamp()
	ev.ID = uuid.NewString()
	ev.CreatedAt = now

	data, err := encode(ev)
	if err != nil {
		return core.ActivityEvent{}, err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO vendor_activity (id, vendor_id, data, created_at) VALUES (?, ?, ?, ?)`,
		ev.ID, ev.VendorID, data, now)
	if err != nil {
		return core.ActivityEvent{}, fmt.Errorf("record activity: %w", err)
	}
	return ev, nil
}

func (r *SQLiteRepository) ListVendorActivity(ctx context.Context, vendorID string) ([]core.ActivityEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM vendor_activity WHERE vendor_id = ? ORDER BY created_at DESC`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list vendor activity: %w", err)
	}
	defer rows.Close()

	var events []core.ActivityEvent
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		var ev core.ActivityEvent
		if err := decodeInto(data, &ev); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
