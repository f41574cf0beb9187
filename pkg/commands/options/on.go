package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/day"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the day a command works on.
type OnOptions struct {
	OnString string

	// now is replaced in tests.
	now func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-3-15", --on="3/15" or --on=yesterday. Defaults to today.`)
}

func (o *OnOptions) GetOn() (day.Date, error) {
	now := time.Now
	if o.now != nil {
		now = o.now
	}
	today := day.Of(now())

	switch strings.ToLower(strings.TrimSpace(o.OnString)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.Prev(), nil
	case "tomorrow":
		return today.Next(), nil
	}

	t, err := time.Parse(layoutISO, o.OnString)
	if err == nil {
		return day.Of(t), nil
	}
	// Let the year be the same.
	t, err = time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		return day.Date{}, err
	}
	d := day.New(today.Year, t.Month(), t.Day())
	// A journal looks back, so 12/30 typed on 1/3 means last December.
	if today.Before(d) {
		d = day.New(today.Year-1, t.Month(), t.Day())
	}
	return d, nil
}
