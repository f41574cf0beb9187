package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/reflect/pkg/day"
	"tableflip.dev/reflect/pkg/printers"
	"tableflip.dev/reflect/pkg/timeutil"
)

// Source lists and loads stored days.
type Source interface {
	Days(ctx context.Context) []day.Date
	Load(date day.Date) *day.Entry
}

type List struct {
	Store    Source
	Window   timeutil.Window
	Label    string
	Until    day.Date
	Calendar bool
	Out      io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list, no store")
	}
	if n.Until.IsZero() {
		n.Until = day.Today()
	}
	if n.Out == nil {
		n.Out = os.Stdout
	}

	since := n.Window.Since(n.Until)
	stored := make(map[day.Date]bool)
	dated := make([]printers.Dated, 0)
	for _, d := range n.Store.Days(ctx) {
		stored[d] = true
		if !n.Window.Contains(d, n.Until) {
			continue
		}
		dated = append(dated, printers.Dated{Date: d, Entry: n.Store.Load(d)})
	}

	pp := printers.PrettyPrint{Out: n.Out}
	t := color.New(color.Bold, color.Underline)
	label := n.Label
	if label == "" {
		label = timeutil.FormatWindow(n.Window)
	}
	_, _ = t.Fprintf(n.Out, "Entries · last %s (%s → %s)\n", label, since, n.Until)
	pp.Days(dated...)

	if n.Calendar {
		has := func(d day.Date) bool { return stored[d] }
		for m := day.New(since.Year, since.Month, 1); !n.Until.Before(m); m = day.New(m.Year, m.Month+1, 1) {
			pp.Month(m, day.Today(), has)
		}
	}
	_, _ = fmt.Fprintf(n.Out, "%d of %d stored days shown\n", len(dated), len(stored))
	return nil
}
