package store

import (
	"fmt"
	"time"
)

// Asset is one indexed upload.
type Asset struct {
	Name      string    `json:"name"`
	Checksum  string    `json:"checksum"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertAsset inserts or replaces an asset index entry.
func (db *DB) UpsertAsset(a Asset) error {
	_, err := db.conn.Exec(`
		INSERT INTO assets (name, checksum, size, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			checksum   = excluded.checksum,
			size       = excluded.size,
			updated_at = excluded.updated_at
	`, a.Name, a.Checksum, a.Size, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("store: upsert asset: %w", err)
	}
	return nil
}

// DeleteAsset removes an asset index entry.
func (db *DB) DeleteAsset(name string) error {
	if _, err := db.conn.Exec(`DELETE FROM assets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("store: delete asset: %w", err)
	}
	return nil
}

// ListAssets returns every indexed asset ordered by name.
func (db *DB) ListAssets() ([]Asset, error) {
	rows, err := db.conn.Query(`SELECT name, checksum, size, updated_at FROM assets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list assets: %w", err)
	}
	defer rows.Close()

	var out []Asset
	for rows.Next() {
		var a Asset
		if err := rows.Scan(&a.Name, &a.Checksum, &a.Size, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AllAssetChecksums returns a name -> checksum map for sync reconciliation.
func (db *DB) AllAssetChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT name, checksum FROM assets`)
	if err != nil {
		return nil, fmt.Errorf("store: asset checksums: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var name, cs string
		if err := rows.Scan(&name, &cs); err != nil {
			return nil, err
		}
		out[name] = cs
	}
	return out, rows.Err()
}
