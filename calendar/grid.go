// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	// ErrInvalidMonth is returned when the month used to generate
	// a grid is not a valid Date.
	ErrInvalidMonth = errors.New("month must be a valid date")
	// ErrInvalidFirstDayOfWeek is returned when the first day of the week
	// is not in the range 0 (Sunday) to 6 (Saturday).
	ErrInvalidFirstDayOfWeek = errors.New("first day of week must be an integer between 0 and 6")
)

// Day is a single cell in a Grid. A cell may be blank, which is the case
// for days outside of the grid's month when outside days are not enabled.
type Day struct {
	date    Date
	outside bool
}

// Date returns the date for the cell and true, or the zero Date and false
// for a blank cell.
func (d Day) Date() (Date, bool) {
	return d.date, d.date.IsValid()
}

// IsBlank returns true if the cell has no date.
func (d Day) IsBlank() bool {
	return !d.date.IsValid()
}

// IsOutside returns true if the cell has a date that belongs to the month
// before or after the grid's month.
func (d Day) IsOutside() bool {
	return d.outside && d.date.IsValid()
}

// Week is a row of a Grid, starting with the first day of the week.
type Week [7]Day

// Grid is the set of weeks needed to display a single month.
type Grid []Week

// Dates returns all of the non-blank dates in the grid in order.
func (g Grid) Dates() []Date {
	dates := make([]Date, 0, len(g)*7)
	for _, w := range g {
		for _, d := range w {
			if date, ok := d.Date(); ok {
				dates = append(dates, date)
			}
		}
	}
	return dates
}

// String returns a plain text rendering of the grid, one week per line
// with blank cells shown as '.'.
func (g Grid) String() string {
	var out strings.Builder
	for i, w := range g {
		if i > 0 {
			out.WriteByte('\n')
		}
		for j, d := range w {
			if j > 0 {
				out.WriteByte(' ')
			}
			date, ok := d.Date()
			if !ok {
				out.WriteString(" .")
				continue
			}
			fmt.Fprintf(&out, "%2d", date.Day())
		}
	}
	return out.String()
}

// MonthWeeks returns the grid of weeks needed to display the month
// containing month. Each week starts on firstDayOfWeek and the first and
// last weeks are padded with the days of the adjacent months. If
// enableOutsideDays is false those padding cells are blank.
//
// An error is returned if month is not valid or firstDayOfWeek is not one
// of Weekdays.
func MonthWeeks(month Date, enableOutsideDays bool, firstDayOfWeek time.Weekday) (Grid, error) {
	if !month.IsValid() {
		return nil, ErrInvalidMonth
	}
	if !slices.Contains(Weekdays, firstDayOfWeek) {
		return nil, fmt.Errorf("%v: %w", int(firstDayOfWeek), ErrInvalidFirstDayOfWeek)
	}
	firstOfMonth := month.StartOfMonth()
	lastOfMonth := month.EndOfMonth()
	fdow := int(firstDayOfWeek)

	prevDays := mod(int(firstOfMonth.Weekday())-fdow, 7)
	nextDays := mod(fdow+6-int(lastOfMonth.Weekday()), 7)
	totalDays := prevDays + lastOfMonth.Day() + nextDays

	weeks := make(Grid, 0, totalDays/7)
	current := firstOfMonth.AddDays(-prevDays)
	for i := 0; i < totalDays; i++ {
		if i%7 == 0 {
			weeks = append(weeks, Week{})
		}
		inMonth := i >= prevDays && i < totalDays-nextDays
		if inMonth || enableOutsideDays {
			weeks[len(weeks)-1][i%7] = Day{date: current, outside: !inMonth}
		}
		current = current.AddDays(1)
	}
	return weeks, nil
}

// MustMonthWeeks is like MonthWeeks but panics on error.
func MustMonthWeeks(month Date, enableOutsideDays bool, firstDayOfWeek time.Weekday) Grid {
	g, err := MonthWeeks(month, enableOutsideDays, firstDayOfWeek)
	if err != nil {
		panic(err)
	}
	return g
}
