package day

import (
	"errors"
	"fmt"
)

// Mood is how the day felt. The zero value means no mood was picked.
type Mood int

const (
	MoodNone Mood = iota
	MoodGreat
	MoodGood
	MoodOkay
	MoodLow
	MoodBad
)

// ErrMoodRange is returned for a mood outside 0 to 5.
var ErrMoodRange = errors.New("day: mood out of range")

var moodSymbols = []string{"", "😊", "🙂", "😐", "😕", "😢"}

var moodMeanings = []string{"", "great", "good", "okay", "low", "bad"}

// Moods lists the selectable moods in display order.
func Moods() []Mood {
	return []Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodBad}
}

// Valid reports whether m is MoodNone or one of the five levels.
func (m Mood) Valid() bool {
	return m >= MoodNone && m <= MoodBad
}

// Symbol is the emoji shown for m, empty for MoodNone.
func (m Mood) Symbol() string {
	if !m.Valid() {
		return "?"
	}
	return moodSymbols[m]
}

// String is the mood name, such as "good".
func (m Mood) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mood(%d)", int(m))
	}
	return moodMeanings[m]
}

// ParseMood accepts a level number (1-5) or a mood name.
func ParseMood(s string) (Mood, error) {
	for i, name := range moodMeanings {
		if i > 0 && s == name {
			return Mood(i), nil
		}
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || fmt.Sprint(n) != s {
		return MoodNone, fmt.Errorf("%w: %q", ErrMoodRange, s)
	}
	if m := Mood(n); m.Valid() {
		return m, nil
	}
	return MoodNone, fmt.Errorf("%w: %d", ErrMoodRange, n)
}
