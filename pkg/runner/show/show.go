package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"tableflip.dev/reflect/pkg/day"
	"tableflip.dev/reflect/pkg/printers"
)

// Loader is the read half of the store.
type Loader interface {
	Load(date day.Date) *day.Entry
}

type Show struct {
	Store  Loader
	On     day.Date
	Output string
	Out    io.Writer
}

// document is the machine readable form, with the date included.
type document struct {
	Date    string   `json:"date" yaml:"date"`
	Note    string   `json:"note" yaml:"note"`
	Mood    string   `json:"mood,omitempty" yaml:"mood,omitempty"`
	Actions []string `json:"actions" yaml:"actions"`
}

func (n *Show) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show, no store")
	}
	if n.Out == nil {
		n.Out = os.Stdout
	}
	if n.On.IsZero() {
		n.On = day.Today()
	}

	e := n.Store.Load(n.On)
	doc := document{Date: n.On.String(), Note: e.Note, Actions: e.Actions}
	if e.Mood != day.MoodNone {
		doc.Mood = e.Mood.String()
	}

	switch n.Output {
	case "", "text":
		pp := printers.PrettyPrint{Out: n.Out}
		pp.Day(n.On, e)
		return nil
	case "json":
		enc := json.NewEncoder(n.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(n.Out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q, expected text, json or yaml", n.Output)
	}
}
