package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/reflect/pkg/day"
)

// Event is emitted by Store.Watch when a day file changes on disk.
type Event struct {
	Date day.Date
}

const watchThrottle = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid dropping events. The channel is closed once ctx is
// done or the watcher fails.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	if s.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				s.logger.WithError(err).Debug("watcher close")
			}
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is behind; the next write to the same day
				// produces another event.
			}
		}

		throttle := newEventThrottle(watchThrottle)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.WithError(err).Debug("watcher error")
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				date, ok := dateFromKey(filepath.Base(evt.Name), EntryExt)
				if !ok || filepath.Dir(evt.Name) != filepath.Clean(s.basePath) {
					continue
				}
				throttle.Enqueue(date, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces bursts of writes to the same day, such as the
// temp file rename diskv performs, into a single event.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[day.Date]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[day.Date]struct{}),
	}
}

func (t *eventThrottle) Enqueue(d day.Date, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending[d] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

// flush holds the lock while sending so Stop cannot race a send on a closed
// channel. send never blocks.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = make(map[day.Date]struct{})
	t.timer = nil
	if t.stopped {
		return
	}
	for d := range pending {
		send(Event{Date: d})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
