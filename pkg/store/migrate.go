package store

import (
	"context"
	"errors"
	"sort"
	"unicode/utf8"

	"tableflip.dev/reflect/pkg/day"
)

var (
	errNotText      = errors.New("not UTF-8 text")
	errNoteMismatch = errors.New("stored note differs from legacy text")
)

// MigrationReport lists what a migration pass did.
type MigrationReport struct {
	Migrated []day.Date
	// Skipped holds legacy file names that could not be converted.
	Skipped []string
}

// Migrate converts plain text day files into structured entries. The text
// becomes the note, the legacy file is removed once the structured file is
// written. Failures are logged per file and never stop the scan.
func (s *Store) Migrate(ctx context.Context) MigrationReport {
	report := MigrationReport{}

	legacy := make([]day.Date, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if d, ok := dateFromKey(key, LegacyExt); ok {
			legacy = append(legacy, d)
		}
	}
	sort.Slice(legacy, func(i, j int) bool {
		return legacy[i].Before(legacy[j])
	})

	for _, date := range legacy {
		if ctx.Err() != nil {
			break
		}
		key := legacyKey(date)
		logger := s.logger.WithField("file", key)

		text, err := s.d.Read(key)
		if err != nil {
			logger.WithError(err).Warn("migrate: read legacy entry")
			report.Skipped = append(report.Skipped, key)
			continue
		}

		if !utf8.Valid(text) {
			logger.WithError(errNotText).Warn("migrate: read legacy entry")
			report.Skipped = append(report.Skipped, key)
			continue
		}

		entry := day.Empty()
		entry.Note = string(text)
		if err := s.Save(date, entry); err != nil {
			logger.WithError(err).Warn("migrate: write entry")
			report.Skipped = append(report.Skipped, key)
			continue
		}
		// The legacy file is the only copy until the note reads back intact.
		if got := s.Load(date); got.Note != entry.Note {
			logger.WithError(errNoteMismatch).Warn("migrate: verify entry")
			report.Skipped = append(report.Skipped, key)
			continue
		}

		if err := s.d.Erase(key); err != nil {
			logger.WithError(err).Warn("migrate: remove legacy entry")
			report.Skipped = append(report.Skipped, key)
			continue
		}
		logger.WithField("date", date.String()).Info("migrated legacy entry")
		report.Migrated = append(report.Migrated, date)
	}
	return report
}
