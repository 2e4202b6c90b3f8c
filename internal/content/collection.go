// Package content implements the typed CRUD services over the document
// store: validation, list parsing, ordering, and change events.
package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aditpras/folio/internal/apperr"
	"github.com/aditpras/folio/internal/store"
)

// Publisher receives change notifications after successful mutations.
// Kind is one of "created", "updated", "archived", "reordered".
type Publisher interface {
	PublishRecordEvent(collection, kind, id string)
}

// Direction of a manual reorder.
type Direction int

const (
	MoveUp Direction = iota
	MoveDown
)

// Collection is the persistence adapter for one content type. All six
// content types share this shape; only the validators differ.
type Collection[T any] struct {
	db        store.DocumentStore
	name      string
	validate  func(*T) error
	normalize func(*T)
	events    Publisher
}

func newCollection[T any](db store.DocumentStore, events Publisher, name string, validate func(*T) error, normalize func(*T)) *Collection[T] {
	return &Collection[T]{db: db, name: name, validate: validate, normalize: normalize, events: events}
}

// Name returns the backing collection name.
func (c *Collection[T]) Name() string { return c.name }

// List returns the active records sorted by their order field, optionally
// filtered by a single equality predicate.
func (c *Collection[T]) List(_ context.Context, filter *store.Filter) ([]T, error) {
	docs, err := c.db.List(c.name, filter)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for i := range docs {
		rec, err := c.decode(&docs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

// Get returns a single record by id.
func (c *Collection[T]) Get(_ context.Context, id string) (*T, error) {
	doc, err := c.db.Get(c.name, id)
	if err != nil {
		return nil, err
	}
	return c.decode(doc)
}

// Create validates and stores a new record. The soft-delete flag is
// always set on creation; the order field stays unset.
func (c *Collection[T]) Create(_ context.Context, rec *T) (*T, error) {
	if err := c.validate(rec); err != nil {
		return nil, err
	}
	fields, err := encodeRecord(rec)
	if err != nil {
		return nil, err
	}
	fields["isActive"] = true
	delete(fields, "order")

	doc, err := c.db.Create(c.name, fields)
	if err != nil {
		return nil, err
	}
	c.publish("created", doc.ID)
	return c.decode(doc)
}

// Update merges a partial field set into an existing record. The merged
// result is validated before anything is written, so a bad submit leaves
// the stored record untouched.
func (c *Collection[T]) Update(ctx context.Context, id string, partial map[string]any) (*T, error) {
	existing, err := c.db.Get(c.name, id)
	if err != nil {
		return nil, err
	}
	merged, err := c.decodeMerged(existing, partial)
	if err != nil {
		return nil, err
	}
	if err := c.validate(merged); err != nil {
		return nil, err
	}
	doc, err := c.db.Merge(c.name, id, partial)
	if err != nil {
		return nil, err
	}
	c.publish("updated", doc.ID)
	return c.decode(doc)
}

// Archive marks a record inactive. Records are never purged.
func (c *Collection[T]) Archive(_ context.Context, id string) error {
	if err := c.db.Archive(c.name, id); err != nil {
		return err
	}
	c.publish("archived", id)
	return nil
}

// Move swaps the order value of a record with its immediate neighbor in
// the visible set. Records that never received an explicit order value
// use their positional index as the swap operand, matching the display
// fallback. The swap exchanges exactly the two values; no other record
// is touched.
func (c *Collection[T]) Move(_ context.Context, id string, dir Direction) error {
	docs, err := c.db.List(c.name, nil)
	if err != nil {
		return err
	}
	idx := -1
	for i := range docs {
		if docs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.ErrNotFound
	}

	var nbr int
	switch dir {
	case MoveUp:
		if idx == 0 {
			return apperr.ErrOutOfBounds
		}
		nbr = idx - 1
	case MoveDown:
		if idx == len(docs)-1 {
			return apperr.ErrOutOfBounds
		}
		nbr = idx + 1
	default:
		return fmt.Errorf("content: unknown direction %d", dir)
	}

	selfOrd := orderOrIndex(&docs[idx], idx)
	nbrOrd := orderOrIndex(&docs[nbr], nbr)
	err = c.db.SetOrders(c.name,
		store.OrderAssignment{ID: docs[idx].ID, Order: nbrOrd},
		store.OrderAssignment{ID: docs[nbr].ID, Order: selfOrd})
	if err != nil {
		return err
	}
	c.publish("reordered", id)
	return nil
}

func (c *Collection[T]) publish(kind, id string) {
	if c.events != nil {
		c.events.PublishRecordEvent(c.name, kind, id)
	}
}

func orderOrIndex(d *store.Document, idx int) int {
	if d.Order != nil {
		return *d.Order
	}
	return idx
}

// decode materializes a typed record from a stored document, applying the
// type's normalize hook (legacy shape coercion) when one is set.
func (c *Collection[T]) decode(doc *store.Document) (*T, error) {
	rec, err := decodeBag[T](docBag(doc))
	if err != nil {
		return nil, err
	}
	if c.normalize != nil {
		c.normalize(rec)
	}
	return rec, nil
}

// decodeMerged materializes what the record would look like after a
// partial merge, for pre-write validation.
func (c *Collection[T]) decodeMerged(doc *store.Document, partial map[string]any) (*T, error) {
	bag := docBag(doc)
	for k, v := range partial {
		if k == "id" {
			continue
		}
		bag[k] = v
	}
	rec, err := decodeBag[T](bag)
	if err != nil {
		return nil, err
	}
	if c.normalize != nil {
		c.normalize(rec)
	}
	return rec, nil
}

func docBag(doc *store.Document) map[string]any {
	bag := make(map[string]any, len(doc.Fields)+3)
	for k, v := range doc.Fields {
		bag[k] = v
	}
	bag["id"] = doc.ID
	bag["isActive"] = doc.IsActive
	if doc.Order != nil {
		bag["order"] = *doc.Order
	}
	return bag
}

func decodeBag[T any](bag map[string]any) (*T, error) {
	raw, err := json.Marshal(bag)
	if err != nil {
		return nil, fmt.Errorf("content: encode bag: %w", err)
	}
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("content: decode record: %w", err)
	}
	return &rec, nil
}

// encodeRecord flattens a typed record into a field bag, dropping the
// store-owned identity.
func encodeRecord[T any](rec *T) (map[string]any, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("content: encode record: %w", err)
	}
	var bag map[string]any
	if err := json.Unmarshal(raw, &bag); err != nil {
		return nil, fmt.Errorf("content: decode bag: %w", err)
	}
	delete(bag, "id")
	return bag, nil
}
