package media

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return st
}

func TestSaveReadDelete(t *testing.T) {
	st := testStore(t)

	data := []byte("image bytes")
	n, err := st.Save("avatar.png", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n != int64(len(data)) {
		t.Errorf("written = %d, want %d", n, len(data))
	}

	got, err := st.Read("avatar.png")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("read = %q", got)
	}

	if err := st.Delete("avatar.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Read("avatar.png"); err == nil {
		t.Error("read after delete should fail")
	}
}

func TestSaveOverwrites(t *testing.T) {
	st := testStore(t)

	st.Save("a.png", strings.NewReader("one"))
	if _, err := st.Save("a.png", strings.NewReader("two")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ := st.Read("a.png")
	if string(got) != "two" {
		t.Errorf("content = %q", got)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	st := testStore(t)

	st.Save("a.png", strings.NewReader("data"))
	entries, err := os.ReadDir(st.Root())
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), tmpPrefix) {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSafeNameRejectsTraversal(t *testing.T) {
	st := testStore(t)

	for _, name := range []string{"../escape.png", "a/b.png", "..", "", "./../x"} {
		if _, err := st.Save(name, strings.NewReader("x")); err == nil {
			t.Errorf("Save(%q) should be rejected", name)
		}
		if _, err := st.Read(name); err == nil {
			t.Errorf("Read(%q) should be rejected", name)
		}
	}
}

func TestListAndStat(t *testing.T) {
	st := testStore(t)

	st.Save("a.png", strings.NewReader("aaa"))
	st.Save("b.png", strings.NewReader("bbbb"))
	// A leftover temp file must not be listed.
	os.WriteFile(filepath.Join(st.Root(), tmpPrefix+"junk"), []byte("x"), 0o644)

	assets, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("len = %d, want 2", len(assets))
	}

	a, err := st.Stat("a.png")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if a == nil || a.Size != 3 || a.Checksum == "" {
		t.Errorf("stat = %+v", a)
	}

	missing, err := st.Stat("nope.png")
	if err != nil {
		t.Fatalf("Stat missing: %v", err)
	}
	if missing != nil {
		t.Errorf("stat missing = %+v, want nil", missing)
	}
}

func TestChecksumTracksContent(t *testing.T) {
	st := testStore(t)

	st.Save("a.png", strings.NewReader("one"))
	before, _ := st.Stat("a.png")
	st.Save("a.png", strings.NewReader("two"))
	after, _ := st.Stat("a.png")
	if before.Checksum == after.Checksum {
		t.Error("checksum did not change with content")
	}
}
