package application

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const documentExt = ".yaml"

// Watch regenerates the header whenever an input document is created,
// written, renamed or removed. Bursts of events are coalesced so that at
// most one generation runs per WatchInterval. Failed generations are logged
// and retried on the next change.
func (a *App) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range a.watchDirs() {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	limiter := rate.NewLimiter(rate.Every(a.cfg.WatchInterval), 1)

	a.logger.Info("watching input documents",
		zap.String("defaults", a.cfg.DefaultsPath),
		zap.String("dir", a.cfg.SearchDir),
		zap.Duration("interval", a.cfg.WatchInterval),
	)

	limiter.Allow()
	a.regenerate()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !a.relevant(event) || pending != nil {
				continue
			}
			a.logger.Debug("input document changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			pending = time.After(limiter.Reserve().Delay())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watcher error", zap.Error(err))
		case <-pending:
			pending = nil
			a.regenerate()
		}
	}
}

func (a *App) regenerate() {
	if _, err := a.Generate(); err != nil {
		a.logger.Error("generation failed", zap.Error(err))
	}
}

// watchDirs returns the distinct directories holding input documents.
func (a *App) watchDirs() []string {
	dirs := []string{filepath.Dir(a.cfg.DefaultsPath)}
	if a.cfg.OverridePath != "" {
		dirs = append(dirs, filepath.Dir(a.cfg.OverridePath))
	} else {
		dirs = append(dirs, a.cfg.SearchDir)
	}

	seen := make(map[string]struct{}, len(dirs))
	out := dirs[:0]
	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		out = append(out, dir)
	}
	return out
}

// relevant reports whether event touches the defaults document, the explicit
// override, or an override candidate in the search directory.
func (a *App) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}

	name := filepath.Clean(event.Name)
	if name == filepath.Clean(a.cfg.DefaultsPath) {
		return true
	}
	if a.cfg.OverridePath != "" {
		return name == filepath.Clean(a.cfg.OverridePath)
	}
	return filepath.Dir(name) == filepath.Clean(a.cfg.SearchDir) && strings.HasSuffix(name, documentExt)
}
