package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes and delivers each valid
// result. Invalid files are reported on Errors and the previous config
// stays in effect.
type Watcher struct {
	mu sync.Mutex

	path    string
	watcher *fsnotify.Watcher
	load    func(path string) (*Config, error)

	configs chan *Config
	errors  chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher watches path. The parent directory is watched so editors
// that save by renaming over the file are seen too.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fsw,
		load:    Load,
		configs: make(chan *Config, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	w.closedWg.Add(1)
	go w.processLoop()
	return w, nil
}

// Configs returns the channel of reloaded configs.
func (w *Watcher) Configs() <-chan *Config {
	return w.configs
}

// Errors returns the channel of reload errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	close(w.configs)
	close(w.errors)
	return w.watcher.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			cfg, err := w.load(w.path)
			if err != nil {
				w.sendError(err)
				continue
			}
			w.sendConfig(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create)
}

// sendConfig replaces any undelivered config with the newer one.
func (w *Watcher) sendConfig(cfg *Config) {
	for {
		select {
		case w.configs <- cfg:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.configs:
		default:
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		// Channel full, drop error
	}
}
