package denylist

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// WatchPasswords monitors path for changes and reloads the common-password
// set each time the file is written. It runs until ctx is cancelled.
//
// If a reload fails (e.g. the file is mid-write), the error is logged and
// the previous list remains active.
func (s *Service) WatchPasswords(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	s.logger.Info("denylist: watching for changes", slog.String("path", path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often write via rename (atomic save), so catch
			// Create as well as Write.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := s.LoadPasswordsFromFile(ctx, path); err != nil {
				s.logger.Error("denylist: reload failed, keeping previous list",
					slog.String("path", path),
					slog.String("error", err.Error()),
				)
				continue
			}

			s.logger.Info("denylist: reloaded",
				slog.String("path", path),
				slog.Int("passwords", s.PasswordCount()),
			)

			// Re-add the file in case an atomic save replaced the inode
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("denylist: watcher error", slog.String("error", err.Error()))
		}
	}
}
