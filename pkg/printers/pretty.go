package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/reflect/pkg/day"
)

const (
	defaultWidth = 80
	noteIndent   = 2
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out   io.Writer
	Width int
}

// Dated pairs an entry with its day for listings.
type Dated struct {
	Date  day.Date
	Entry *day.Entry
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(d day.Date, mood day.Mood) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprint(pp.out(), d.Long())
	if mood != day.MoodNone {
		c := color.New(color.Faint)
		_, _ = c.Fprintf(pp.out(), "  %s %s", mood.Symbol(), mood.String())
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Day prints the title, the wrapped note and the numbered actions.
func (pp *PrettyPrint) Day(d day.Date, e *day.Entry) {
	if e == nil {
		e = day.Empty()
	}
	pp.Title(d, e.Mood)

	h := color.New(color.Italic)
	f := color.New(color.Faint, color.Italic)

	_, _ = h.Fprintln(pp.out(), "Note")
	if strings.TrimSpace(e.Note) == "" {
		_, _ = f.Fprint(pp.out(), " none\n")
	} else {
		wrapped := wordwrap.String(e.Note, pp.width()-noteIndent)
		_, _ = fmt.Fprintln(pp.out(), indent.String(wrapped, noteIndent))
	}
	pp.NewLine()

	_, _ = h.Fprintln(pp.out(), "Actions")
	pp.Actions(e.Actions...)
}

func (pp *PrettyPrint) Actions(actions ...string) {
	if len(actions) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.Wrap = true
	tbl.MaxColWidth = uint(pp.width())
	for i, a := range actions {
		tbl.AddRow(fmt.Sprintf("%3d.", i+1), a)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Days prints one line per day: date, mood, action count and the first line
// of the note.
func (pp *PrettyPrint) Days(days ...Dated) {
	if len(days) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, dd := range days {
		e := dd.Entry
		if e == nil {
			e = day.Empty()
		}
		mood := e.Mood.Symbol()
		if mood == "" {
			mood = " "
		}
		tbl.AddRow(dd.Date.String(), mood, countLabel(len(e.Actions)), preview(e.Note, pp.width()/2))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func countLabel(n int) string {
	switch n {
	case 1:
		return "1 action"
	default:
		return fmt.Sprintf("%d actions", n)
	}
}

func preview(note string, width int) string {
	line := strings.TrimSpace(note)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i]) + " …"
	}
	return truncate.StringWithTail(line, uint(width), "…")
}
