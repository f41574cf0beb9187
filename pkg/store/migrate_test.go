package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/reflect/pkg/day"
)

func TestMigrateLegacyEntry(t *testing.T) {
	s, base := newTestStore(t)
	legacy := filepath.Join(base, "2024-03-15.txt")
	require.NoError(t, os.WriteFile(legacy, []byte("Had a good day"), 0o644))

	report := s.Migrate(context.Background())
	assert.Equal(t, []day.Date{day.New(2024, time.March, 15)}, report.Migrated)
	assert.Empty(t, report.Skipped)

	_, err := os.Stat(legacy)
	assert.True(t, os.IsNotExist(err), "legacy file should be removed")

	e := s.Load(day.New(2024, time.March, 15))
	assert.Equal(t, "Had a good day", e.Note)
	assert.Empty(t, e.Actions)
	assert.NotNil(t, e.Actions)
}

func TestMigrateIsIdempotent(t *testing.T) {
	s, base := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(base, "2024-03-15.txt"), []byte("one"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "2024-03-16.txt"), []byte("two"), 0o644))

	first := s.Migrate(context.Background())
	assert.Len(t, first.Migrated, 2)

	second := s.Migrate(context.Background())
	assert.Empty(t, second.Migrated)
	assert.Empty(t, second.Skipped)
	assert.Equal(t, "two", s.Load(day.New(2024, time.March, 16)).Note)
}

func TestMigrateSkipsNonDateNames(t *testing.T) {
	s, base := newTestStore(t)
	for _, name := range []string{"2024-02-30.txt", "todo.txt", "2024-3-5.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(base, name), []byte("x"), 0o644))
	}

	report := s.Migrate(context.Background())
	assert.Empty(t, report.Migrated)
	assert.Empty(t, report.Skipped)

	for _, name := range []string{"2024-02-30.txt", "todo.txt", "2024-3-5.txt"} {
		_, err := os.Stat(filepath.Join(base, name))
		assert.NoError(t, err, "%s should be left alone", name)
	}
	assert.Empty(t, s.Days(context.Background()))
}

func TestMigrateNoLegacyFiles(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Save(day.New(2024, time.March, 15), &day.Entry{Note: "kept"}))

	report := s.Migrate(context.Background())
	assert.Empty(t, report.Migrated)
	assert.Equal(t, "kept", s.Load(day.New(2024, time.March, 15)).Note)
}

func TestMigrateKeepsNonUTF8Legacy(t *testing.T) {
	s, base := newTestStore(t)
	raw := []byte("caf\xe9 latin-1 note")
	bad := filepath.Join(base, "2024-03-15.txt")
	require.NoError(t, os.WriteFile(bad, raw, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "2024-03-16.txt"), []byte("fine"), 0o644))

	report := s.Migrate(context.Background())
	assert.Equal(t, []day.Date{day.New(2024, time.March, 16)}, report.Migrated)
	assert.Equal(t, []string{"2024-03-15.txt"}, report.Skipped)

	got, err := os.ReadFile(bad)
	require.NoError(t, err, "legacy file must survive")
	assert.Equal(t, raw, got)
	assert.False(t, s.Has(day.New(2024, time.March, 15)))
	assert.Equal(t, "fine", s.Load(day.New(2024, time.March, 16)).Note)
}

func TestMigrateSkipsUnreadableAndContinues(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	s, base := newTestStore(t)
	locked := filepath.Join(base, "2024-03-14.txt")
	require.NoError(t, os.WriteFile(locked, []byte("secret"), 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o644) })
	require.NoError(t, os.WriteFile(filepath.Join(base, "2024-03-15.txt"), []byte("open"), 0o644))

	report := s.Migrate(context.Background())
	assert.Equal(t, []day.Date{day.New(2024, time.March, 15)}, report.Migrated)
	assert.Equal(t, []string{"2024-03-14.txt"}, report.Skipped)

	_, err := os.Stat(locked)
	assert.NoError(t, err, "unreadable legacy file is left in place")
	assert.Equal(t, "open", s.Load(day.New(2024, time.March, 15)).Note)

	// A later pass retries the file once it can be read.
	require.NoError(t, os.Chmod(locked, 0o644))
	again := s.Migrate(context.Background())
	assert.Equal(t, []day.Date{day.New(2024, time.March, 14)}, again.Migrated)
	assert.Empty(t, again.Skipped)
}
