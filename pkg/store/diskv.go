package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/reflect/pkg/day"
)

const (
	// EntryExt marks the structured per-day format.
	EntryExt = ".json"
	// LegacyExt marks the plain text per-day format.
	LegacyExt = ".txt"

	tempDir = ".tmp"
)

// Store keeps one file per calendar day under a base directory.
type Store struct {
	d        *diskv.Diskv
	basePath string
	logger   log.FieldLogger
}

// New opens the store described by cfg, creating the base directory when it
// does not exist yet. A nil cfg loads the config from viper.
func New(cfg Config, logger log.FieldLogger) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			TempDir:           filepath.Join(basePath, tempDir),
			// The session keeps its own cache; reading through to disk lets
			// edits made by other processes show up.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		logger:   logger.WithField("component", "store"),
	}, nil
}

func (s *Store) BasePath() string {
	return s.basePath
}

// Load returns the entry stored for date. A missing, empty or malformed file
// yields the default entry.
func (s *Store) Load(date day.Date) *day.Entry {
	key := entryKey(date)
	val, err := s.d.Read(key)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.WithError(err).WithField("date", date.String()).Debug("read failed, using empty entry")
		}
		return day.Empty()
	}
	if len(bytes.TrimSpace(val)) == 0 {
		return day.Empty()
	}
	e := &day.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		s.logger.WithError(err).WithField("date", date.String()).Debug("malformed entry, using empty entry")
		return day.Empty()
	}
	if !e.Mood.Valid() {
		e.Mood = day.MoodNone
	}
	return e.Normalize()
}

// Save overwrites the file for date with entry.
func (s *Store) Save(date day.Date, entry *day.Entry) error {
	if entry == nil {
		entry = day.Empty()
	}
	data, err := json.MarshalIndent(entry.Clone().Normalize(), "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", date, err)
	}
	if err := s.d.Write(entryKey(date), data); err != nil {
		return fmt.Errorf("store: save %s: %w", date, err)
	}
	return nil
}

// Has reports whether a structured file exists for date.
func (s *Store) Has(date day.Date) bool {
	return s.d.Has(entryKey(date))
}

// Days lists every date with a structured file, oldest first.
func (s *Store) Days(ctx context.Context) []day.Date {
	days := make([]day.Date, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if d, ok := dateFromKey(key, EntryExt); ok {
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

func entryKey(d day.Date) string {
	return d.String() + EntryExt
}

func legacyKey(d day.Date) string {
	return d.String() + LegacyExt
}

// dateFromKey parses keys like 2024-03-15.json. Keys inside subdirectories
// never match.
func dateFromKey(key, ext string) (day.Date, bool) {
	if strings.ContainsRune(key, '/') || !strings.HasSuffix(key, ext) {
		return day.Date{}, false
	}
	d, err := day.Parse(strings.TrimSuffix(key, ext))
	if err != nil {
		return day.Date{}, false
	}
	return d, true
}

// Every day lives directly in the base directory.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	parts := make([]string, 0, len(pathKey.Path)+1)
	for _, p := range pathKey.Path {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(append(parts, pathKey.FileName), "/")
}
