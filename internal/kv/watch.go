package kv

import (
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports keys of a DirStore that were changed on disk, possibly by
// another process sharing the same directory.
type Watcher struct {
	Changes <-chan string

	changes  chan string
	done     chan struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
	dir      string
	logger   *zap.Logger
}

// NewWatcher creates a watcher for the store's directory. Call Start to begin.
func NewWatcher(store *DirStore, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(store.Dir()); err != nil {
		fw.Close()
		return nil, err
	}

	ch := make(chan string, 16)
	return &Watcher{
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
		debounce: 100 * time.Millisecond,
		dir:      store.Dir(),
		logger:   logger.Named("watcher"),
	}, nil
}

// Start runs the event loop in its own goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Stop closes the watcher, waits for the loop to exit and closes Changes.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			key, ok := keyFromPath(event.Name)
			if !ok {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[key] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for key, t := range pending {
				if now.Sub(t) >= w.debounce {
					w.emit(key)
					delete(pending, key)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.String("dir", w.dir), zap.Error(err))
		}
	}
}

// emit drops the notification when the consumer is behind; a later change
// for the same key will be reported again.
func (w *Watcher) emit(key string) {
	select {
	case w.changes <- key:
	default:
	}
}
