package store

import (
	"errors"
	"os"
	"testing"

	"github.com/aditpras/folio/internal/apperr"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "folio-store-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := Open(dbFile.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateDefaults(t *testing.T) {
	db := testDB(t)

	doc, err := db.Create("skills", map[string]any{"name": "Go"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doc.ID == "" {
		t.Error("id not assigned")
	}
	if !doc.IsActive {
		t.Error("new document should be active")
	}
	if doc.Order != nil {
		t.Errorf("order should be unset, got %d", *doc.Order)
	}

	got, err := db.Get("skills", doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Fields["name"] != "Go" {
		t.Errorf("name = %v", got.Fields["name"])
	}
}

func TestCreateStripsIDFromBag(t *testing.T) {
	db := testDB(t)

	doc, err := db.Create("skills", map[string]any{"id": "client-chosen", "name": "Go"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doc.ID == "client-chosen" {
		t.Error("client-supplied id should be replaced")
	}
	if _, ok := doc.Fields["id"]; ok {
		t.Error("id must not survive in the field bag")
	}
}

func TestGetNotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.Get("skills", "nope")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMergeTouchesOnlyGivenFields(t *testing.T) {
	db := testDB(t)

	doc, err := db.Create("projects", map[string]any{"title": "Folio", "description": "portfolio"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	merged, err := db.Merge("projects", doc.ID, map[string]any{"title": "Folio v2"})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if merged.Fields["title"] != "Folio v2" {
		t.Errorf("title = %v", merged.Fields["title"])
	}
	if merged.Fields["description"] != "portfolio" {
		t.Errorf("description lost on merge: %v", merged.Fields["description"])
	}
	if !merged.IsActive {
		t.Error("merge must not flip isActive")
	}
}

func TestMergeNotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.Merge("projects", "nope", map[string]any{"title": "x"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestArchive(t *testing.T) {
	db := testDB(t)

	doc, err := db.Create("education", map[string]any{"institution": "ITB"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := db.Archive("education", doc.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	got, err := db.Get("education", doc.ID)
	if err != nil {
		t.Fatalf("Get after archive: %v", err)
	}
	if got.IsActive {
		t.Error("archived document still active")
	}
	if got.Fields["institution"] != "ITB" {
		t.Error("archive must not touch the field bag")
	}

	// Re-archiving is a no-op, not an error.
	if err := db.Archive("education", doc.ID); err != nil {
		t.Errorf("second Archive: %v", err)
	}

	if err := db.Archive("education", "nope"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("archive missing = %v, want ErrNotFound", err)
	}
}

func TestListExcludesArchivedAndSorts(t *testing.T) {
	db := testDB(t)

	a, _ := db.Create("skills", map[string]any{"name": "A"})
	b, _ := db.Create("skills", map[string]any{"name": "B", "order": 2})
	c, _ := db.Create("skills", map[string]any{"name": "C", "order": 1})
	if err := db.Archive("skills", a.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	docs, err := db.List("skills", nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2", len(docs))
	}
	// C has ord 1, B has ord 2.
	if docs[0].ID != c.ID || docs[1].ID != b.ID {
		t.Errorf("order = [%v %v], want [C B]", docs[0].Fields["name"], docs[1].Fields["name"])
	}
}

func TestListUnsetOrderUsesPosition(t *testing.T) {
	db := testDB(t)

	withOrd, _ := db.Create("skills", map[string]any{"name": "ordered", "order": 5})
	bare, _ := db.Create("skills", map[string]any{"name": "bare"})

	docs, err := db.List("skills", nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// Unset ord falls back to the enumeration position (1), which sorts
	// ahead of the explicit ord 5.
	if docs[0].ID != bare.ID || docs[1].ID != withOrd.ID {
		t.Errorf("order = [%v %v], want [bare ordered]", docs[0].Fields["name"], docs[1].Fields["name"])
	}
}

func TestListFilter(t *testing.T) {
	db := testDB(t)

	db.Create("experiences", map[string]any{"title": "Dev", "type": "work"})
	db.Create("experiences", map[string]any{"title": "TA", "type": "teaching"})

	docs, err := db.List("experiences", &Filter{Field: "type", Value: "work"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 || docs[0].Fields["title"] != "Dev" {
		t.Errorf("filter result = %+v", docs)
	}

	if _, err := db.List("experiences", &Filter{Field: "type')--", Value: "x"}); err == nil {
		t.Error("malformed filter field should be rejected")
	}
}

func TestListAllIncludesArchived(t *testing.T) {
	db := testDB(t)

	first, _ := db.Create("contactMessages", map[string]any{"name": "one"})
	db.Create("contactMessages", map[string]any{"name": "two"})
	if err := db.Archive("contactMessages", first.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	docs, err := db.ListAll("contactMessages")
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2", len(docs))
	}
	if docs[0].Fields["name"] != "one" {
		t.Error("ListAll must keep arrival order")
	}
}

func TestUpsertCreatesThenMerges(t *testing.T) {
	db := testDB(t)

	doc, err := db.Upsert("personalInfo", "main", map[string]any{"name": "Adit", "title": "Engineer"})
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if doc.ID != "main" {
		t.Errorf("id = %q, want main", doc.ID)
	}

	doc, err = db.Upsert("personalInfo", "main", map[string]any{"title": "Senior Engineer"})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if doc.Fields["name"] != "Adit" {
		t.Error("upsert merge lost an untouched field")
	}
	if doc.Fields["title"] != "Senior Engineer" {
		t.Errorf("title = %v", doc.Fields["title"])
	}
}

func TestSetOrdersSwap(t *testing.T) {
	db := testDB(t)

	a, _ := db.Create("projects", map[string]any{"title": "A", "order": 1})
	b, _ := db.Create("projects", map[string]any{"title": "B", "order": 2})

	err := db.SetOrders("projects",
		OrderAssignment{ID: a.ID, Order: 2},
		OrderAssignment{ID: b.ID, Order: 1})
	if err != nil {
		t.Fatalf("SetOrders: %v", err)
	}

	gotA, _ := db.Get("projects", a.ID)
	gotB, _ := db.Get("projects", b.ID)
	if gotA.Order == nil || *gotA.Order != 2 {
		t.Errorf("a.order = %v, want 2", gotA.Order)
	}
	if gotB.Order == nil || *gotB.Order != 1 {
		t.Errorf("b.order = %v, want 1", gotB.Order)
	}
}

func TestSetOrdersMissingRollsBack(t *testing.T) {
	db := testDB(t)

	a, _ := db.Create("projects", map[string]any{"title": "A", "order": 1})

	err := db.SetOrders("projects",
		OrderAssignment{ID: a.ID, Order: 9},
		OrderAssignment{ID: "nope", Order: 1})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	got, _ := db.Get("projects", a.ID)
	if got.Order == nil || *got.Order != 1 {
		t.Errorf("a.order = %v, want 1 (tx must roll back)", got.Order)
	}
}
