package media

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/aditpras/folio/internal/store"
)

// memIndex is an in-memory AssetIndex for tests.
type memIndex struct {
	mu     sync.Mutex
	assets map[string]store.Asset
}

func newMemIndex() *memIndex {
	return &memIndex{assets: make(map[string]store.Asset)}
}

func (m *memIndex) UpsertAsset(a store.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[a.Name] = a
	return nil
}

func (m *memIndex) DeleteAsset(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.assets, name)
	return nil
}

func (m *memIndex) AllAssetChecksums() (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.assets))
	for name, a := range m.assets {
		out[name] = a.Checksum
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSyncIndexesNewFiles(t *testing.T) {
	st := testStore(t)
	idx := newMemIndex()

	st.Save("a.png", strings.NewReader("aaa"))
	st.Save("b.png", strings.NewReader("bbb"))

	if err := Sync(idx, st, discardLogger()); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	sums, _ := idx.AllAssetChecksums()
	if len(sums) != 2 {
		t.Errorf("indexed %d assets, want 2", len(sums))
	}
}

func TestSyncDropsStaleEntries(t *testing.T) {
	st := testStore(t)
	idx := newMemIndex()

	idx.UpsertAsset(store.Asset{Name: "gone.png", Checksum: "old"})
	st.Save("kept.png", strings.NewReader("data"))

	if err := Sync(idx, st, discardLogger()); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	sums, _ := idx.AllAssetChecksums()
	if _, ok := sums["gone.png"]; ok {
		t.Error("stale entry survived sync")
	}
	if _, ok := sums["kept.png"]; !ok {
		t.Error("disk file missing from index")
	}
}

func TestSyncUpdatesChangedChecksum(t *testing.T) {
	st := testStore(t)
	idx := newMemIndex()

	st.Save("a.png", strings.NewReader("v1"))
	Sync(idx, st, discardLogger())
	before, _ := idx.AllAssetChecksums()

	st.Save("a.png", strings.NewReader("v2"))
	Sync(idx, st, discardLogger())
	after, _ := idx.AllAssetChecksums()

	if before["a.png"] == after["a.png"] {
		t.Error("checksum not refreshed for changed file")
	}
}
