package day

import (
	"testing"
	"time"
)

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != (Date{Year: 2024, Month: time.March, Day: 15}) {
		t.Fatalf("unexpected date %+v", d)
	}
	if got := d.String(); got != "2024-03-15" {
		t.Fatalf("expected 2024-03-15, got %s", got)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "2024-13-01", "2024-02-30", "notes", "2024-3-15"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestAddDaysCrossesBoundaries(t *testing.T) {
	cases := []struct {
		from Date
		n    int
		want string
	}{
		{New(2024, time.December, 31), 1, "2025-01-01"},
		{New(2024, time.March, 1), -1, "2024-02-29"},
		{New(2023, time.March, 1), -1, "2023-02-28"},
		{New(2024, time.March, 15), 0, "2024-03-15"},
		{New(1, time.January, 1), 365, "0002-01-01"},
	}
	for _, tc := range cases {
		if got := tc.from.AddDays(tc.n).String(); got != tc.want {
			t.Fatalf("%s%+d: expected %s, got %s", tc.from, tc.n, tc.want, got)
		}
	}
}

func TestNextPrevInverse(t *testing.T) {
	d := New(2024, time.February, 28)
	if got := d.Next().Prev(); got != d {
		t.Fatalf("expected %s, got %s", d, got)
	}
	if !d.Before(d.Next()) || d.Next().Before(d) {
		t.Fatalf("ordering broken around %s", d)
	}
}

func TestOfIgnoresClock(t *testing.T) {
	loc := time.FixedZone("x", 5*3600)
	a := Of(time.Date(2024, time.March, 15, 0, 0, 1, 0, loc))
	b := Of(time.Date(2024, time.March, 15, 23, 59, 59, 0, loc))
	if a != b {
		t.Fatalf("expected same day, got %s and %s", a, b)
	}
}
