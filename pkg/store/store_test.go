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

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string    { return t.path }
func (t testConfig) LogLevel() string    { return "debug" }
func (t testConfig) LogFile() string     { return "" }
func (t testConfig) Tick() time.Duration { return time.Second }

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	base := filepath.Join(t.TempDir(), "entries")
	s, err := New(testConfig{path: base}, nil)
	require.NoError(t, err)
	return s, base
}

func TestNewCreatesBaseDirectory(t *testing.T) {
	_, base := newTestStore(t)
	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadMissingIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	e := s.Load(day.New(2024, time.March, 15))
	assert.True(t, e.IsEmpty())
	assert.NotNil(t, e.Actions)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	d := day.New(2024, time.March, 15)
	want := &day.Entry{
		Note:    "Had a good day\nwith two lines",
		Mood:    day.MoodGreat,
		Actions: []string{"Went for a run", "Called mum", "Went for a run"},
	}
	require.NoError(t, s.Save(d, want))

	got := s.Load(d)
	assert.True(t, want.Equal(got), "got %+v", got)
	assert.True(t, s.Has(d))
}

func TestSaveOverwrites(t *testing.T) {
	s, _ := newTestStore(t)
	d := day.New(2024, time.March, 15)
	require.NoError(t, s.Save(d, &day.Entry{Note: "first", Actions: []string{"a", "b"}}))
	require.NoError(t, s.Save(d, &day.Entry{Note: "second"}))

	got := s.Load(d)
	assert.Equal(t, "second", got.Note)
	assert.Empty(t, got.Actions)
}

func TestSaveFileShape(t *testing.T) {
	s, base := newTestStore(t)
	d := day.New(2024, time.March, 15)
	require.NoError(t, s.Save(d, &day.Entry{Note: "hi"}))

	raw, err := os.ReadFile(filepath.Join(base, "2024-03-15.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"note":"hi","actions":[]}`, string(raw))
}

func TestLoadMalformedIsEmpty(t *testing.T) {
	s, base := newTestStore(t)
	cases := map[string]string{
		"2024-03-15.json": `{"note": "trunc`,
		"2024-03-16.json": ``,
		"2024-03-17.json": "  \n",
		"2024-03-18.json": `["not", "an", "object"]`,
		"2024-03-19.json": `{"note": 7}`,
	}
	for name, content := range cases {
		require.NoError(t, os.WriteFile(filepath.Join(base, name), []byte(content), 0o644))
	}
	for name := range cases {
		d, ok := dateFromKey(name, EntryExt)
		require.True(t, ok)
		e := s.Load(d)
		assert.True(t, e.IsEmpty(), "%s: got %+v", name, e)
	}
}

func TestLoadClearsUnknownMood(t *testing.T) {
	s, base := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(base, "2024-03-15.json"),
		[]byte(`{"note":"kept","mood":42,"actions":["x"]}`), 0o644))

	e := s.Load(day.New(2024, time.March, 15))
	assert.Equal(t, "kept", e.Note)
	assert.Equal(t, day.MoodNone, e.Mood)
	assert.Equal(t, []string{"x"}, e.Actions)
}

func TestDaysListsStructuredFilesInOrder(t *testing.T) {
	s, base := newTestStore(t)
	require.NoError(t, s.Save(day.New(2024, time.March, 15), day.Empty()))
	require.NoError(t, s.Save(day.New(2023, time.December, 31), day.Empty()))
	require.NoError(t, os.WriteFile(filepath.Join(base, "2024-01-01.txt"), []byte("legacy"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "notes.json"), []byte("{}"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "sub", "2024-01-02.json"), []byte("{}"), 0o644))

	days := s.Days(context.Background())
	assert.Equal(t, []day.Date{
		day.New(2023, time.December, 31),
		day.New(2024, time.March, 15),
	}, days)
}

func TestDateFromKey(t *testing.T) {
	d, ok := dateFromKey("2024-03-15.json", EntryExt)
	require.True(t, ok)
	assert.Equal(t, "2024-03-15", d.String())

	for _, key := range []string{"2024-03-15.txt", "2024-02-30.json", "reflect.log", ".tmp/2024-03-15.json"} {
		_, ok := dateFromKey(key, EntryExt)
		assert.False(t, ok, key)
	}
}
