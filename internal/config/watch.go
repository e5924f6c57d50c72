package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
	done chan struct{}
}

// Watch starts watching path. The directory is watched rather than the file
// so that editors which replace the file on save are still seen. onChange
// receives every reload; err is non-nil when the new file failed to parse or
// validate, in which case cfg must be ignored.
func Watch(path string, onChange func(cfg Config, err error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config watcher: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{fsw: fsw, path: abs, done: make(chan struct{})}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func(Config, error)) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err == nil {
				err = cfg.Validate()
			}
			onChange(cfg, err)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			onChange(Config{}, fmt.Errorf("config watcher: %w", err))
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
