package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchFile calls run once and then again each time filename changes,
// until ctx is done. Bursts of events closer together than the configured
// debounce interval cause a single run. Diagnostics already printed by run
// do not stop the loop.
func (a *app) watchFile(ctx context.Context, stderr io.Writer, filename string, run func() error) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors often replace the file
	// on save, which drops a watch held on the old inode.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filename, err)
	}
	a.logger.Info("watching", "file", filename, "debounce", a.cfg.Watch.Debounce.Duration)

	rerun := func() error {
		if err := run(); err != nil && !errors.Is(err, errReported) {
			return err
		}
		return nil
	}
	if err := rerun(); err != nil {
		return err
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
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
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			a.logger.Debug("file changed", "file", filename, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(a.cfg.Watch.Debounce.Duration)
			} else {
				timer.Reset(a.cfg.Watch.Debounce.Duration)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			fmt.Fprintln(stderr, a.styles.header("re-run "+filename))
			if err := rerun(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("watcher error", "error", err)
		}
	}
}
