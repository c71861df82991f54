package server

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	kio "github.com/kunhq/kundocs/pkg/io"
)

// watch reloads the document set after definition files in the directory
// change. Bursts of events within reloadDebounce cause one reload.
func (s *Server) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(s.cfg.Dir); err != nil {
		// Keep serving without reloads.
		s.logger.Error("failed to watch definitions", "dir", s.cfg.Dir, "err", err)
		<-ctx.Done()
		return nil
	}
	s.logger.Debug("watching definitions", "dir", s.cfg.Dir)

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			name := event.Name
			debounce = time.AfterFunc(reloadDebounce, func() {
				s.logger.Debug("definition changed, reloading", "file", name)
				s.Reload(ctx)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "err", err)
		}
	}
}

func relevant(e fsnotify.Event) bool {
	if !kio.IsDefinition(e.Name) {
		return false
	}
	return e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
