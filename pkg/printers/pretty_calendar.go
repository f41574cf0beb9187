package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/reflect/pkg/day"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar grid for the month containing then. Days for which
// has reports true are bold, today is underlined.
func (pp *PrettyPrint) Month(then day.Date, today day.Date, has func(day.Date) bool) {
	out := pp.out()
	first := day.New(then.Year, then.Month, 1)
	d := first.Time(time.UTC).Weekday()

	tf := color.New(color.FgWhite, color.Italic)
	title := fmt.Sprintf("%s %d", then.Month.String(), then.Year)
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), title)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 1; i <= DaysIn(then); i++ {
		current := day.New(then.Year, then.Month, i)
		printer := l1
		if has != nil && has(current) {
			printer = l2
		}
		if current == today {
			printer = color.New(color.Underline)
			printer.Add(color.Bold)
		}
		_, _ = printer.Fprintf(out, "%2d", i)
		_, _ = fmt.Fprint(out, " ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func DaysIn(then day.Date) int {
	return time.Date(then.Year, then.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
