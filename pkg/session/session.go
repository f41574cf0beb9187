// Package session holds the state of one journaling run: the active date,
// every day visited so far, and the last persisted value of the active day.
// All methods must be called from a single goroutine.
package session

import (
	log "github.com/sirupsen/logrus"

	"tableflip.dev/reflect/pkg/day"
)

// Store loads and saves day entries. Load never fails; a day with no usable
// file is the empty entry.
type Store interface {
	Load(date day.Date) *day.Entry
	Save(date day.Date, entry *day.Entry) error
}

type Session struct {
	store  Store
	logger log.FieldLogger

	current day.Date
	entries map[day.Date]*day.Entry
	// snapshot is the active day's content as last read from or written to
	// the store.
	snapshot *day.Entry
	// unsaved holds visited days whose last save failed.
	unsaved map[day.Date]struct{}
}

type Option func(*Session)

func WithLogger(logger log.FieldLogger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New starts a session on start, loading that day from the store.
func New(store Store, start day.Date, opts ...Option) *Session {
	s := &Session{
		store:   store,
		logger:  log.StandardLogger(),
		entries: make(map[day.Date]*day.Entry),
		unsaved: make(map[day.Date]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithField("component", "session")
	s.load(start)
	return s
}

// Date is the cursor.
func (s *Session) Date() day.Date {
	return s.current
}

// Entry is the active day. Callers may mutate it; the next Tick persists the
// change.
func (s *Session) Entry() *day.Entry {
	return s.entries[s.current]
}

// Dirty reports whether the active day differs from what was last persisted.
func (s *Session) Dirty() bool {
	return !s.Entry().Equal(s.snapshot)
}

func (s *Session) SetNote(note string) {
	s.Entry().Note = note
}

func (s *Session) SetMood(m day.Mood) error {
	return s.Entry().SetMood(m)
}

func (s *Session) AddAction(text string) bool {
	return s.Entry().AddAction(text)
}

func (s *Session) RemoveAction(i int) (string, error) {
	return s.Entry().RemoveAction(i)
}

// Tick saves the active day if it changed since the last save. It reports
// whether a write happened. On failure the snapshot is kept, so the next
// Tick retries.
func (s *Session) Tick() (bool, error) {
	entry := s.Entry()
	if entry.Equal(s.snapshot) {
		return false, nil
	}
	logger := s.logger.WithField("date", s.current.String())
	if err := s.store.Save(s.current, entry); err != nil {
		logger.WithError(err).Error("save failed")
		s.unsaved[s.current] = struct{}{}
		return false, err
	}
	s.snapshot = entry.Clone()
	delete(s.unsaved, s.current)
	logger.Debug("saved")
	return true, nil
}

// Forward moves the cursor to the next day.
func (s *Session) Forward() error {
	return s.GoTo(s.current.Next())
}

// Backward moves the cursor to the previous day.
func (s *Session) Backward() error {
	return s.GoTo(s.current.Prev())
}

// GoTo saves the outgoing day and moves the cursor to d. The move happens even
// when the save fails; that error is returned and the edits stay cached so a
// later visit retries them.
func (s *Session) GoTo(d day.Date) error {
	_, err := s.Tick()
	s.load(d)
	return err
}

// Close saves pending edits of the active day.
func (s *Session) Close() error {
	_, err := s.Tick()
	return err
}

// Invalidate reacts to d changing on disk. A cached day that is not active is
// dropped so the next visit reads it again. The active day is reloaded only
// when it has no unsaved edits. It reports whether the active entry's content
// changed.
func (s *Session) Invalidate(d day.Date) bool {
	if _, pending := s.unsaved[d]; pending {
		return false
	}
	if d != s.current {
		delete(s.entries, d)
		return false
	}
	if s.Dirty() {
		return false
	}
	fresh := s.store.Load(d)
	if fresh.Equal(s.snapshot) {
		return false
	}
	s.entries[d] = fresh.Clone()
	s.snapshot = fresh
	s.logger.WithField("date", d.String()).Info("reloaded after external change")
	return true
}

// load makes d active. The snapshot always comes from the store so edits
// cached from an earlier failed save still compare as changed.
func (s *Session) load(d day.Date) {
	snapshot := s.store.Load(d)
	if snapshot == nil {
		snapshot = day.Empty()
	}
	if _, ok := s.entries[d]; !ok {
		s.entries[d] = snapshot.Clone()
	}
	s.snapshot = snapshot
	s.current = d
}
