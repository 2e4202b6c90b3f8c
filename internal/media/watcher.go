package media

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventCallback is called after a watcher-driven index change.
// kind is one of "created", "updated", "deleted".
type EventCallback func(kind, name string)

// Watch starts an fsnotify watcher on the uploads directory and keeps the
// asset index in sync until ctx is cancelled. It calls cb (if non-nil)
// after each successful index mutation.
//
// The uploads namespace is flat, so only the root is watched. Remove and
// rename events are debounced into a reconciliation pass that drops stale
// index entries.
func Watch(ctx context.Context, db AssetIndex, st *Store, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(st.Root()); err != nil {
		return err
	}

	logger.Info("media watcher: started", slog.String("root", st.Root()))

	var reconcileTimer *time.Timer
	var reconcileCh <-chan time.Time

	scheduleReconcile := func() {
		if reconcileTimer == nil {
			reconcileTimer = time.NewTimer(200 * time.Millisecond)
			reconcileCh = reconcileTimer.C
		} else {
			reconcileTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reconcileTimer != nil {
				reconcileTimer.Stop()
			}
			logger.Info("media watcher: stopped")
			return nil

		case <-reconcileCh:
			reconcile(db, st, logger, cb)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			name := filepath.Base(ev.Name)
			if strings.HasPrefix(name, tmpPrefix) || strings.HasPrefix(name, ".") {
				continue
			}

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				if info, statErr := os.Stat(ev.Name); statErr != nil || info.IsDir() {
					continue
				}
				asset, statErr := st.Stat(name)
				if statErr != nil || asset == nil {
					continue
				}
				if err := db.UpsertAsset(*asset); err != nil {
					logger.Warn("media watcher: upsert failed", slog.String("name", name), slog.String("error", err.Error()))
					continue
				}
				kind := "updated"
				if ev.Op&fsnotify.Create != 0 {
					kind = "created"
				}
				logger.Debug("media watcher: indexed", slog.String("name", name), slog.String("op", kind))
				if cb != nil {
					cb(kind, name)
				}

			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				scheduleReconcile()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("media watcher: error", slog.String("error", err.Error()))
		}
	}
}

// reconcile drops index entries whose files no longer exist on disk.
func reconcile(db AssetIndex, st *Store, logger *slog.Logger, cb EventCallback) {
	checksums, err := db.AllAssetChecksums()
	if err != nil {
		logger.Warn("media watcher: reconcile failed", slog.String("error", err.Error()))
		return
	}
	for name := range checksums {
		asset, err := st.Stat(name)
		if err != nil {
			continue
		}
		if asset == nil {
			if err := db.DeleteAsset(name); err != nil {
				logger.Warn("media watcher: delete failed", slog.String("name", name), slog.String("error", err.Error()))
				continue
			}
			logger.Debug("media watcher: removed stale", slog.String("name", name))
			if cb != nil {
				cb("deleted", name)
			}
		}
	}
}
