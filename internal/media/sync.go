package media

import "log/slog"

// Sync reconciles the asset index with the uploads directory:
//   - new/changed files are upserted
//   - files removed from disk are deleted from the index
func Sync(db AssetIndex, st *Store, logger *slog.Logger) error {
	assets, err := st.List()
	if err != nil {
		return err
	}

	checksums, err := db.AllAssetChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		disk[a.Name] = struct{}{}

		if checksums[a.Name] == a.Checksum {
			continue
		}
		if err := db.UpsertAsset(a); err != nil {
			logger.Warn("media sync: upsert failed", slog.String("name", a.Name), slog.String("error", err.Error()))
		} else {
			logger.Debug("media sync: indexed", slog.String("name", a.Name))
		}
	}

	// Remove stale entries.
	for name := range checksums {
		if _, ok := disk[name]; !ok {
			if err := db.DeleteAsset(name); err != nil {
				logger.Warn("media sync: delete failed", slog.String("name", name), slog.String("error", err.Error()))
			} else {
				logger.Debug("media sync: removed stale", slog.String("name", name))
			}
		}
	}

	return nil
}
