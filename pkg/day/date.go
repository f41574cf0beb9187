package day

import (
	"fmt"
	"time"
)

// Layout is the on-disk and command line form of a Date.
const Layout = "2006-01-02"

// Date is a calendar day with no time or zone component. It is comparable and
// is used directly as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Of returns the calendar day t falls on in t's location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the local calendar day.
func Today() Date {
	return Of(time.Now())
}

// New normalizes the given fields, so New(2024, 2, 30) is March 1, 2024.
func New(year int, month time.Month, d int) Date {
	return Of(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

// Parse reads a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("day: parse %q: %w", s, err)
	}
	return Of(t), nil
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays moves by n calendar days, crossing month and year boundaries.
func (d Date) AddDays(n int) Date {
	return Of(d.Time(time.UTC).AddDate(0, 0, n))
}

func (d Date) Next() Date { return d.AddDays(1) }
func (d Date) Prev() Date { return d.AddDays(-1) }

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Long formats the date for headings, e.g. "Friday, March 15, 2024".
func (d Date) Long() string {
	return d.Time(time.UTC).Format("Monday, January 2, 2006")
}
