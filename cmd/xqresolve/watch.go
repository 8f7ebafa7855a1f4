package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/ComedicChimera/olive"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 250 * time.Millisecond

func execWatchCommand(result *olive.ArgParseResult, out, errOut printer) int {
	path, _ := result.PrimaryArg()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	checkStaticContext(path, out, errOut)
	err := watchFile(ctx, path, watchDebounce, func() {
		_ = out.warn("Changed", path)
		checkStaticContext(path, out, errOut)
	})
	if err != nil {
		_ = errOut.error("Watch Error", err)
		return 1
	}
	return 0
}

// watchFile calls onChange after path is written, created or replaced, once
// events have been quiet for debounce. The parent directory is watched so that
// editors that save by rename are seen.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	absPath = filepath.Clean(absPath)
	if _, err := os.Stat(absPath); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	if debounce <= 0 {
		debounce = watchDebounce
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	pending := false

	resetDebounce := func() {
		if pending {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}
		timer.Reset(debounce)
		pending = true
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			resetDebounce()
		case <-timer.C:
			if pending {
				pending = false
				onChange()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return watchErr
		}
	}
}
