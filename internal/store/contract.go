package store

// DocumentStore defines the persistence operations for content records.
// Consumers should depend on this interface rather than the concrete *DB
// type to facilitate testing with mocks.
type DocumentStore interface {
	List(collection string, filter *Filter) ([]Document, error)
	ListAll(collection string) ([]Document, error)
	Get(collection, id string) (*Document, error)
	Create(collection string, fields map[string]any) (*Document, error)
	Upsert(collection, id string, fields map[string]any) (*Document, error)
	Merge(collection, id string, partial map[string]any) (*Document, error)
	Archive(collection, id string) error
	SetOrders(collection string, a OrderAssignment, b OrderAssignment) error
	Close() error
}

// Verify *DB satisfies DocumentStore at compile time.
var _ DocumentStore = (*DB)(nil)
