package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aditpras/folio/internal/apperr"
)

// Reserved field keys lifted out of the JSON bag into columns.
const (
	keyID       = "id"
	keyIsActive = "isActive"
	keyOrder    = "order"
)

// Document is one stored record: an identity, a flat field bag, the
// soft-delete flag, and an optional manual ordering value.
type Document struct {
	ID        string
	Fields    map[string]any
	IsActive  bool
	Order     *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter is a single equality predicate on a top-level field.
type Filter struct {
	Field string
	Value string
}

// OrderAssignment pairs a record id with its new ord value.
type OrderAssignment struct {
	ID    string
	Order int
}

var identRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

const docColumns = `id, data, is_active, ord, created_at, updated_at`

func scanDocument(scan func(dest ...any) error) (*Document, error) {
	var (
		d        Document
		data     string
		isActive int
		ord      sql.NullInt64
	)
	if err := scan(&d.ID, &data, &isActive, &ord, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), &d.Fields); err != nil {
		return nil, fmt.Errorf("store: decode fields: %w", err)
	}
	d.IsActive = isActive != 0
	if ord.Valid {
		n := int(ord.Int64)
		d.Order = &n
	}
	return &d, nil
}

// splitMeta removes the reserved keys from fields and returns the
// remaining bag plus the extracted isActive/order values (nil when the
// key was absent).
func splitMeta(fields map[string]any) (rest map[string]any, isActive *bool, order *int, err error) {
	rest = make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case keyID:
			// Identity is assigned by the store; an id inside the bag is dropped.
		case keyIsActive:
			b, ok := v.(bool)
			if !ok {
				return nil, nil, nil, fmt.Errorf("store: %s must be a boolean", keyIsActive)
			}
			isActive = &b
		case keyOrder:
			n, convErr := toInt(v)
			if convErr != nil {
				return nil, nil, nil, fmt.Errorf("store: %s: %w", keyOrder, convErr)
			}
			order = &n
		default:
			rest[k] = v
		}
	}
	return rest, isActive, order, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	default:
		return 0, errors.New("must be an integer")
	}
}

// List returns active documents in display order: ascending by the
// effective order value, which is ord when set and the record's
// enumeration position when not. The stable sort keeps never-reordered
// records in insertion order.
func (db *DB) List(collection string, filter *Filter) ([]Document, error) {
	q := `SELECT ` + docColumns + ` FROM documents WHERE collection = ? AND is_active = 1`
	args := []any{collection}
	if filter != nil {
		if !identRe.MatchString(filter.Field) {
			return nil, fmt.Errorf("store: invalid filter field %q", filter.Field)
		}
		q += ` AND json_extract(data, '$.` + filter.Field + `') = ?`
		args = append(args, filter.Value)
	}
	q += ` ORDER BY rowid`
	docs, err := db.queryDocuments(q, args...)
	if err != nil {
		return nil, err
	}
	type keyed struct {
		key int
		doc Document
	}
	ks := make([]keyed, len(docs))
	for i := range docs {
		k := i
		if docs[i].Order != nil {
			k = *docs[i].Order
		}
		ks[i] = keyed{key: k, doc: docs[i]}
	}
	sort.SliceStable(ks, func(a, b int) bool { return ks[a].key < ks[b].key })
	for i := range ks {
		docs[i] = ks[i].doc
	}
	return docs, nil
}

// ListAll returns every document in a collection regardless of the
// soft-delete flag, in enumeration order. Used for append-only logs.
func (db *DB) ListAll(collection string) ([]Document, error) {
	q := `SELECT ` + docColumns + ` FROM documents WHERE collection = ? ORDER BY rowid`
	return db.queryDocuments(q, collection)
}

func (db *DB) queryDocuments(q string, args ...any) ([]Document, error) {
	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		d, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// Get returns a single document by id, active or not.
func (db *DB) Get(collection, id string) (*Document, error) {
	row := db.conn.QueryRow(
		`SELECT `+docColumns+` FROM documents WHERE collection = ? AND id = ?`,
		collection, id)
	d, err := scanDocument(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get: %w", err)
	}
	return d, nil
}

// Create stores a new document with a fresh identity. isActive defaults
// to true and ord stays unset unless the field bag says otherwise.
func (db *DB) Create(collection string, fields map[string]any) (*Document, error) {
	rest, isActive, order, err := splitMeta(fields)
	if err != nil {
		return nil, err
	}
	active := true
	if isActive != nil {
		active = *isActive
	}
	id := uuid.NewString()
	data, err := json.Marshal(rest)
	if err != nil {
		return nil, fmt.Errorf("store: encode fields: %w", err)
	}
	now := time.Now().UTC()
	_, err = db.conn.Exec(
		`INSERT INTO documents (collection, id, data, is_active, ord, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		collection, id, string(data), boolToInt(active), nullableInt(order), now, now)
	if err != nil {
		return nil, fmt.Errorf("store: create: %w", err)
	}
	return &Document{ID: id, Fields: rest, IsActive: active, Order: order, CreatedAt: now, UpdatedAt: now}, nil
}

// Upsert merges fields into the document with the given id, creating it
// when absent. Used for the fixed-key profile singleton.
func (db *DB) Upsert(collection, id string, fields map[string]any) (*Document, error) {
	doc, err := db.Merge(collection, id, fields)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	rest, isActive, order, err := splitMeta(fields)
	if err != nil {
		return nil, err
	}
	active := true
	if isActive != nil {
		active = *isActive
	}
	data, err := json.Marshal(rest)
	if err != nil {
		return nil, fmt.Errorf("store: encode fields: %w", err)
	}
	now := time.Now().UTC()
	_, err = db.conn.Exec(
		`INSERT INTO documents (collection, id, data, is_active, ord, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		collection, id, string(data), boolToInt(active), nullableInt(order), now, now)
	if err != nil {
		return nil, fmt.Errorf("store: upsert: %w", err)
	}
	return &Document{ID: id, Fields: rest, IsActive: active, Order: order, CreatedAt: now, UpdatedAt: now}, nil
}

// Merge applies a partial field update, leaving every other stored field
// untouched. Reserved keys update their columns.
func (db *DB) Merge(collection, id string, partial map[string]any) (*Document, error) {
	rest, isActive, order, err := splitMeta(partial)
	if err != nil {
		return nil, err
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	row := tx.QueryRow(
		`SELECT `+docColumns+` FROM documents WHERE collection = ? AND id = ?`,
		collection, id)
	doc, err := scanDocument(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: merge read: %w", err)
	}

	for k, v := range rest {
		doc.Fields[k] = v
	}
	if isActive != nil {
		doc.IsActive = *isActive
	}
	if order != nil {
		doc.Order = order
	}
	doc.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("store: encode fields: %w", err)
	}
	_, err = tx.Exec(
		`UPDATE documents SET data = ?, is_active = ?, ord = ?, updated_at = ?
		 WHERE collection = ? AND id = ?`,
		string(data), boolToInt(doc.IsActive), nullableInt(doc.Order), doc.UpdatedAt, collection, id)
	if err != nil {
		return nil, fmt.Errorf("store: merge write: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("store: merge commit: %w", err)
	}
	return doc, nil
}

// Archive flips is_active to false and nothing else. Archiving an
// already-archived document is a no-op.
func (db *DB) Archive(collection, id string) error {
	res, err := db.conn.Exec(
		`UPDATE documents SET is_active = 0, updated_at = ? WHERE collection = ? AND id = ?`,
		time.Now().UTC(), collection, id)
	if err != nil {
		return fmt.Errorf("store: archive: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// SetOrders writes two ord values in one transaction. Callers use it to
// exchange the ordering of a record and its neighbor.
func (db *DB) SetOrders(collection string, a OrderAssignment, b OrderAssignment) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	for _, asg := range []OrderAssignment{a, b} {
		res, err := tx.Exec(
			`UPDATE documents SET ord = ?, updated_at = ? WHERE collection = ? AND id = ?`,
			asg.Order, now, collection, asg.ID)
		if err != nil {
			return fmt.Errorf("store: set order: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return apperr.ErrNotFound
		}
	}
	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
