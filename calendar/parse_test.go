// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"fmt"
	"testing"
	"time"

	"cloudeng.io/datepicker/calendar"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		val, format string
		iso         string
	}{
		{"2020-02-29", "", "2020-02-29"},
		{"02/29/2020", "", "2020-02-29"},
		{"10/19/2026", "", "2026-10-19"},
		{"2026-10-19", "", "2026-10-19"},
		{"19.10.2026", "02.01.2006", "2026-10-19"},
		{"2026-10-19", "02.01.2006", "2026-10-19"},
		{"Oct 19 2026", "Jan 2 2006", "2026-10-19"},
		{"0001-01-01", "", "0001-01-01"},
		{"01/01/0001", "", "0001-01-01"},
	} {
		d, ok := calendar.ParseIn(tc.val, tc.format, time.UTC)
		if !ok {
			t.Errorf("%v: failed to parse", tc.val)
			continue
		}
		if got, want := d.String(), tc.iso; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
		if got, want := d.Time().Hour(), 12; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	// The first day of year 1 at midnight UTC is the zero time.Time and
	// at noon in a UTC+12 zone it is the zero instant.
	for _, loc := range []*time.Location{time.UTC, time.FixedZone("UTC+12", 12*60*60)} {
		d, ok := calendar.ParseIn("0001-01-01", "", loc)
		if !ok || !d.IsValid() {
			t.Errorf("%v: got %v, %v, want a valid date", loc, d, ok)
			continue
		}
		weeks, err := calendar.MonthWeeks(d, false, time.Sunday)
		if err != nil {
			t.Errorf("%v: %v", loc, err)
			continue
		}
		if got, want := weeks.Dates()[0].String(), "0001-01-01"; got != want {
			t.Errorf("%v: got %v, want %v", loc, got, want)
		}
	}

	for _, tc := range []struct {
		val, format string
	}{
		{"", ""},
		{"2019-02-29", ""},
		{"02/29/2019", ""},
		{"2026-10-19x", ""},
		{"2026-10", ""},
		{" 2026-10-19", ""},
		{"2026-13-01", ""},
		{"19.10.2026", ""},
		{"32.10.2026", "02.01.2006"},
		{"not a date", "02.01.2006"},
	} {
		if d, ok := calendar.Parse(tc.val, tc.format); ok || d.IsValid() {
			t.Errorf("%q: unexpectedly parsed as %v", tc.val, d)
		}
	}
}

func TestISOStrings(t *testing.T) {
	for _, iso := range []string{"2020-02-29", "1999-12-31", "2026-01-01"} {
		d, ok := calendar.Parse(iso, "")
		if !ok {
			t.Fatalf("%v: failed to parse", iso)
		}
		if got, want := calendar.ToISODateString(d), iso; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := calendar.ToISOMonthString(d), iso[:7]; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	if got, want := calendar.ISODateString("10/19/2026", ""), "2026-10-19"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.ISOMonthString("19.10.2026", "02.01.2006"), "2026-10"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, val := range []string{"", "2019-02-29", "garbage"} {
		if got, want := calendar.ISODateString(val, ""), ""; got != want {
			t.Errorf("%q: got %v, want %v", val, got, want)
		}
		if got, want := calendar.ISOMonthString(val, ""), ""; got != want {
			t.Errorf("%q: got %v, want %v", val, got, want)
		}
	}
	if got, want := calendar.ToISODateString(calendar.Date{}), ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.ToISOMonthString(calendar.Date{}), ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	m, ok := calendar.ParseMonth("2026-10")
	if !ok {
		t.Fatalf("failed to parse month")
	}
	if got, want := m.String(), "2026-10-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if m, ok := calendar.ParseMonth("0001-01"); !ok || !m.IsValid() {
		t.Errorf("got %v, %v, want a valid month", m, ok)
	}
	if _, ok := calendar.ParseMonth("2026-10-19"); ok {
		t.Errorf("expected an error")
	}
}

func TestIsSameDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	d := newDate(2026, 10, 19)
	for _, tc := range []struct {
		a, b      calendar.Date
		sameDay   bool
		sameMonth bool
	}{
		{d, d, true, true},
		{d, calendar.NewDate(2026, 10, 19, ny), true, true},
		{d, calendar.FromTime(time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)), true, true},
		{d, d.AddDays(1), false, true},
		{d, d.AddMonths(1), false, false},
		{d, newDate(2025, 10, 19), false, false},
		{d, calendar.Date{}, false, false},
		{calendar.Date{}, d, false, false},
		{calendar.Date{}, calendar.Date{}, false, false},
		{calendar.FromTime(time.Time{}), calendar.Date{}, false, false},
	} {
		if got, want := calendar.IsSameDay(tc.a, tc.b), tc.sameDay; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := calendar.IsSameMonth(tc.a, tc.b), tc.sameMonth; got != want {
			t.Errorf("%v, %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}

func ExampleParse() {
	for _, val := range []string{"2020-02-29", "2019-02-29", "10/19/2026"} {
		d, ok := calendar.Parse(val, "")
		fmt.Printf("%q: %v %q\n", val, ok, calendar.ToISODateString(d))
	}
	// Output:
	// "2020-02-29": true "2020-02-29"
	// "2019-02-29": false ""
	// "10/19/2026": true "2026-10-19"
}
