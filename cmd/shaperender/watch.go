package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/shape/scene"
)

// settle is how long the watcher waits for more events before rendering.
const settle = 100 * time.Millisecond

// watch renders again whenever the diagram or its stylesheet changes.
// Editors often replace files instead of writing them, so the parent
// directories are watched and events are filtered by name.
func watch(ctx context.Context, cfg config, d *scene.Diagram, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	files := watchedFiles(cfg, d)
	if err := addDirs(w, files); err != nil {
		return err
	}
	logger.Info("watching", "files", len(files))

	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("change", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-timer.C:
			nd, err := render(cfg)
			if err != nil {
				logger.Error("render failed", "err", err)
				continue
			}
			logger.Info("rendered", "out", cfg.out, "cells", len(nd.Cells))

			nf := watchedFiles(cfg, nd)
			if err := addDirs(w, nf); err != nil {
				logger.Warn("watch error", "err", err)
			}
			files = nf
		}
	}
}

func watchedFiles(cfg config, d *scene.Diagram) map[string]bool {
	files := map[string]bool{filepath.Clean(cfg.in): true}
	if d.Stylesheet != "" {
		files[filepath.Clean(d.Stylesheet)] = true
	}
	return files
}

// addDirs watches the directories holding files. Adding a directory twice
// is harmless.
func addDirs(w *fsnotify.Watcher, files map[string]bool) error {
	for f := range files {
		if err := w.Add(filepath.Dir(f)); err != nil {
			return fmt.Errorf("watch %s: %w", filepath.Dir(f), err)
		}
	}
	return nil
}
