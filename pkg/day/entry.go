package day

import (
	"errors"
	"fmt"
	"strings"
)

// ErrActionIndex is returned when removing an action position that does not
// exist.
var ErrActionIndex = errors.New("day: action index out of range")

// Entry is one calendar day's journal content.
type Entry struct {
	Note    string   `json:"note" yaml:"note"`
	Mood    Mood     `json:"mood,omitempty" yaml:"mood,omitempty"`
	Actions []string `json:"actions" yaml:"actions"`
}

// Empty returns the default entry: no note, no mood and no actions.
func Empty() *Entry {
	return &Entry{Actions: []string{}}
}

// Normalize makes Actions non-nil so it serializes as an empty list.
func (e *Entry) Normalize() *Entry {
	if e.Actions == nil {
		e.Actions = []string{}
	}
	return e
}

// Clone returns a deep copy.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return Empty()
	}
	actions := make([]string, len(e.Actions))
	copy(actions, e.Actions)
	return &Entry{Note: e.Note, Mood: e.Mood, Actions: actions}
}

// Equal reports structural equality. A nil action list equals an empty one.
func (e *Entry) Equal(o *Entry) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Note != o.Note || e.Mood != o.Mood || len(e.Actions) != len(o.Actions) {
		return false
	}
	for i := range e.Actions {
		if e.Actions[i] != o.Actions[i] {
			return false
		}
	}
	return true
}

// IsEmpty is true for an entry equal to the default.
func (e *Entry) IsEmpty() bool {
	return e.Equal(Empty())
}

// AddAction appends an action. Blank text is ignored and reported as false.
func (e *Entry) AddAction(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	e.Actions = append(e.Actions, text)
	return true
}

// RemoveAction deletes the action at position i, shifting later actions down.
func (e *Entry) RemoveAction(i int) (string, error) {
	if i < 0 || i >= len(e.Actions) {
		return "", fmt.Errorf("%w: %d of %d", ErrActionIndex, i, len(e.Actions))
	}
	removed := e.Actions[i]
	e.Actions = append(e.Actions[:i], e.Actions[i+1:]...)
	return removed, nil
}

// SetMood sets the mood, rejecting values outside the known levels.
func (e *Entry) SetMood(m Mood) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrMoodRange, int(m))
	}
	e.Mood = m
	return nil
}
