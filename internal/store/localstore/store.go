// Package localstore emulates a hosted relational client's query surface
// over local key-value storage, so the product can run without a live
// backend. Tables are JSON arrays of loosely-typed records stored one per
// key; there are no transactions, no indexes and no multi-writer
// guarantees. It is a demo shim, not production persistence.
package localstore

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// KeyPrefix namespaces every table key in the underlying storage.
const KeyPrefix = "bridezilla_demo_"

// Known table names.
const (
	TableVendors        = "vendors"
	TableRSVPs          = "rsvps"
	TablePlannerCouples = "planner_couples"
	TableSharedVendors  = "shared_vendors"
	TableVendorActivity = "vendor_activity"
)

// Tables lists every table the store manages, in reset order.
var Tables = []string{
	TableVendors,
	TableRSVPs,
	TablePlannerCouples,
	TableSharedVendors,
	TableVendorActivity,
}

// Record is a loosely-typed JSON object with a store-assigned id.
type Record = map[string]any

// dynamicDateRe matches seed due-date sentinels like
// "__DYNAMIC_DATE_OFFSET_7__", resolved to an absolute date relative to
// the current time so seeded payments always present near-future dates.
var dynamicDateRe = regexp.MustCompile(`^__DYNAMIC_DATE_OFFSET_(\d+)__$`)

// Store is the local record store. All operations are synchronous and
// guarded by a single mutex; storage failures degrade to empty results
// rather than errors so the same code path runs anywhere.
type Store struct {
	mu    sync.Mutex
	kv    KV
	now   func() time.Time
	newID func() string
}

// Option tweaks store construction; used by tests to pin clocks and ids.
type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New builds a store over kv. A nil kv yields a store whose every
// operation is a no-op returning empty results.
func New(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(table string) string {
	return KeyPrefix + table
}

// readTable loads a table snapshot, resolving vendor due-date sentinels on
// every read. Absent or unreadable tables come back empty.
func (s *Store) readTable(table string) []Record {
	if s.kv == nil {
		return nil
	}
	raw, ok := s.kv.Get(s.key(table))
	if !ok {
		return nil
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Warn("localstore: dropping corrupt table snapshot", "table", table, "error", err)
		return nil
	}
	if table == TableVendors {
		for _, rec := range records {
			s.resolveDynamicDates(rec)
		}
	}
	return records
}

func (s *Store) writeTable(table string, records []Record) {
	if s.kv == nil {
		return
	}
	raw, err := json.Marshal(records)
	if err != nil {
		slog.Warn("localstore: failed to encode table snapshot", "table", table, "error", err)
		return
	}
	if err := s.kv.Set(s.key(table), raw); err != nil {
		slog.Warn("localstore: failed to persist table snapshot", "table", table, "error", err)
	}
}

// resolveDynamicDates rewrites payment due-date sentinels in place.
func (s *Store) resolveDynamicDates(rec Record) {
	payments, ok := rec["payments"].([]any)
	if !ok {
		return
	}
	for _, p := range payments {
		payment, ok := p.(map[string]any)
		if !ok {
			continue
		}
		due, ok := payment["due_date"].(string)
		if !ok {
			continue
		}
		m := dynamicDateRe.FindStringSubmatch(due)
		if m == nil {
			continue
		}
		offset, _ := strconv.Atoi(m[1])
		payment["due_date"] = s.now().AddDate(0, 0, offset).Format("2006-01-02")
	}
}

// Select starts a read query against table.
func (s *Store) Select(table string) *Query {
	return &Query{store: s, table: table}
}

// Insert normalizes data to JSON types, assigns id and timestamps
// (overwriting caller-supplied values for those fields), appends the record
// and returns the stored copy. The planner_couples table additionally gets
// a last_activity stamp.
func (s *Store) Insert(table string, data Record) Record {
	if s.kv == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := normalize(data)
	now := s.now().UTC().Format(time.RFC3339)
	rec["id"] = s.newID()
	rec["created_at"] = now
	rec["updated_at"] = now
	if table == TablePlannerCouples {
		rec["last_activity"] = now
	}

	records := s.readTable(table)
	records = append(records, rec)
	s.writeTable(table, records)
	return copyRecord(rec)
}

// Update stages a patch; the terminal Eq applies it to the first matching
// record only.
func (s *Store) Update(table string, patch Record) *UpdateQuery {
	return &UpdateQuery{store: s, table: table, patch: normalize(patch)}
}

// Delete stages a removal; the terminal Eq removes every matching record.
// The first-match update vs all-match delete asymmetry is load-bearing:
// demo reset flows bulk-delete by a shared field value.
func (s *Store) Delete(table string) *DeleteQuery {
	return &DeleteQuery{store: s, table: table}
}

// Query accumulates filters and ordering for a read.
type Query struct {
	store  *Store
	table  string
	wheres []condition
	orders []ordering
}

type condition struct {
	field string
	value any
}

type ordering struct {
	field     string
	ascending bool
}

// Eq filters to records whose field strictly equals value. No coercion and
// no partial matching; values are compared after JSON normalization.
func (q *Query) Eq(field string, value any) *Query {
	q.wheres = append(q.wheres, condition{field: field, value: normalizeValue(value)})
	return q
}

// OrderBy sorts results by field, ascending unless stated otherwise. The
// sort is stable for equal keys.
func (q *Query) OrderBy(field string, ascending bool) *Query {
	q.orders = append(q.orders, ordering{field: field, ascending: ascending})
	return q
}

// Collect runs the query and returns matching records in storage order,
// after any requested ordering.
func (q *Query) Collect() []Record {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	var out []Record
	for _, rec := range q.store.readTable(q.table) {
		if matches(rec, q.wheres) {
			out = append(out, copyRecord(rec))
		}
	}
	for i := len(q.orders) - 1; i >= 0; i-- {
		ord := q.orders[i]
		sort.SliceStable(out, func(a, b int) bool {
			less := compareValues(out[a][ord.field], out[b][ord.field]) < 0
			if ord.ascending {
				return less
			}
			return compareValues(out[a][ord.field], out[b][ord.field]) > 0
		})
	}
	return out
}

// Single returns the first matching record, or nil for no match. Unlike a
// real relational client it never errors on zero or multiple matches.
func (q *Query) Single() Record {
	results := q.Collect()
	if len(results) == 0 {
		return nil
	}
	return results[0]
}

// UpdateQuery applies a staged patch on its terminal Eq.
type UpdateQuery struct {
	store *Store
	table string
	patch Record
}

// Eq merges the patch into the first record whose field equals value,
// refreshes updated_at and returns the updated record; nil when nothing
// matched (not an error).
func (u *UpdateQuery) Eq(field string, value any) Record {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	want := normalizeValue(value)
	records := u.store.readTable(u.table)
	for i, rec := range records {
		if !valueEq(rec[field], want) {
			continue
		}
		for k, v := range u.patch {
			rec[k] = v
		}
		rec["updated_at"] = u.store.now().UTC().Format(time.RFC3339)
		records[i] = rec
		u.store.writeTable(u.table, records)
		return copyRecord(rec)
	}
	return nil
}

// DeleteQuery removes records on its terminal Eq.
type DeleteQuery struct {
	store *Store
	table string
}

// Eq removes every record whose field equals value.
func (d *DeleteQuery) Eq(field string, value any) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()

	want := normalizeValue(value)
	records := d.store.readTable(d.table)
	kept := records[:0]
	for _, rec := range records {
		if !valueEq(rec[field], want) {
			kept = append(kept, rec)
		}
	}
	d.store.writeTable(d.table, kept)
}

func matches(rec Record, wheres []condition) bool {
	for _, w := range wheres {
		if !valueEq(rec[w.field], w.value) {
			return false
		}
	}
	return true
}

// valueEq compares primitives strictly: numbers with numbers, otherwise
// same-type equality. Composite values never match.
func valueEq(a, b any) bool {
	if fa, ok := asFloat(a); ok {
		fb, ok := asFloat(b)
		return ok && fa == fb
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		return false
	}
}

// compareValues orders primitives the way a relational client would:
// nil first, then numbers, strings and bools by their natural order.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if fa, ok := asFloat(a); ok {
		if fb, ok := asFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			switch {
			case sa < sb:
				return -1
			case sa > sb:
				return 1
			default:
				return 0
			}
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case !ba && bb:
				return -1
			case ba && !bb:
				return 1
			default:
				return 0
			}
		}
	}
	return 0
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// normalize round-trips a record through JSON so stored values always use
// JSON types (float64 numbers, plain maps and slices) and never alias
// caller memory.
func normalize(data Record) Record {
	if data == nil {
		return Record{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return Record{}
	}
	var out Record
	if err := json.Unmarshal(raw, &out); err != nil {
		return Record{}
	}
	return out
}

func normalizeValue(v any) any {
	if f, ok := asFloat(v); ok {
		return f
	}
	return v
}

func copyRecord(rec Record) Record {
	return normalize(rec)
}
