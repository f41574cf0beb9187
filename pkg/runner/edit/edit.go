package edit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/reflect/pkg/day"
	"tableflip.dev/reflect/pkg/printers"
	"tableflip.dev/reflect/pkg/session"
)

// Edit changes one day from the command line and saves it if anything
// changed.
type Edit struct {
	Store  session.Store
	Logger log.FieldLogger
	On     day.Date

	Note   *string
	Append bool
	Mood   *day.Mood
	Add    []string
	// Remove is the 1-based position of an action to delete, 0 for none.
	Remove int

	Out   io.Writer
	Quiet bool
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	if n.On.IsZero() {
		n.On = day.Today()
	}
	if n.Out == nil {
		n.Out = os.Stdout
	}

	s := session.New(n.Store, n.On, session.WithLogger(n.Logger))

	if n.Note != nil {
		note := *n.Note
		if n.Append && s.Entry().Note != "" {
			note = s.Entry().Note + "\n" + note
		}
		s.SetNote(note)
	}
	if n.Mood != nil {
		if err := s.SetMood(*n.Mood); err != nil {
			return err
		}
	}
	for _, a := range n.Add {
		if !s.AddAction(a) {
			return errors.New("action text is empty")
		}
	}
	if n.Remove != 0 {
		if _, err := s.RemoveAction(n.Remove - 1); err != nil {
			return fmt.Errorf("no action number %d on %s", n.Remove, n.On)
		}
	}

	if err := s.Close(); err != nil {
		return err
	}

	if !n.Quiet {
		pp := printers.PrettyPrint{Out: n.Out}
		pp.Day(n.On, s.Entry())
	}
	return nil
}
