// Package media manages the local uploads directory: atomic writes, a
// flat namespace, and an index kept in sync with the disk by a watcher.
package media

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aditpras/folio/internal/store"
)

const tmpPrefix = ".folio-tmp-"

// AssetIndex is the subset of store operations the media layer needs.
type AssetIndex interface {
	UpsertAsset(a store.Asset) error
	DeleteAsset(name string) error
	AllAssetChecksums() (map[string]string, error)
}

// Store is the uploads directory. Names are flat: no sub-directories.
type Store struct {
	root string // absolute path to uploads directory
}

// NewStore creates the uploads directory if needed and returns a Store
// rooted there.
func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("media: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("media: create root: %w", err)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute uploads directory path.
func (s *Store) Root() string { return s.root }

// safeName validates that the filename is a plain name (no path
// separators, no traversal) and returns the absolute path under root.
func (s *Store) safeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("media: filename is required")
	}
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("media: invalid filename: %s", name)
	}
	abs := filepath.Join(s.root, cleaned)
	if !strings.HasPrefix(abs, s.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("media: path escapes uploads directory")
	}
	return abs, nil
}

// Save atomically writes the file: tmp file, fsync, rename. Returns the
// number of bytes written.
func (s *Store) Save(name string, r io.Reader) (int64, error) {
	abs, err := s.safeName(name)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(s.root, tmpPrefix+"*")
	if err != nil {
		return 0, fmt.Errorf("media: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	written, err := io.Copy(tmp, r)
	if err != nil {
		return 0, fmt.Errorf("media: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("media: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("media: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return 0, fmt.Errorf("media: rename: %w", err)
	}
	success = true
	return written, nil
}

// Read returns the raw bytes of an uploaded file.
func (s *Store) Read(name string) ([]byte, error) {
	abs, err := s.safeName(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("media: read %s: %w", name, err)
	}
	return data, nil
}

// Delete removes an uploaded file.
func (s *Store) Delete(name string) error {
	abs, err := s.safeName(name)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("media: delete %s: %w", name, err)
	}
	return nil
}

// List returns metadata for every file in the uploads directory.
func (s *Store) List() ([]store.Asset, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("media: list: %w", err)
	}
	var out []store.Asset
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), tmpPrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(s.root, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, store.Asset{
			Name:      e.Name(),
			Checksum:  checksum(data),
			Size:      info.Size(),
			UpdatedAt: info.ModTime(),
		})
	}
	return out, nil
}

// Stat returns a single asset's metadata, or nil when it does not exist.
func (s *Store) Stat(name string) (*store.Asset, error) {
	abs, err := s.safeName(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("media: stat %s: %w", name, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("media: read %s: %w", name, err)
	}
	return &store.Asset{
		Name:      name,
		Checksum:  checksum(data),
		Size:      info.Size(),
		UpdatedAt: info.ModTime().UTC(),
	}, nil
}

func checksum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
