// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides the date arithmetic used to render a date picker:
// month grids with optional outside days, same-day comparison, strict
// parsing and formatting of date strings and the sequence of months shown
// in a multi-month display.
//
// All dates produced by this package are normalized to noon in their
// location so that daylight saving transitions, which move local midnight,
// never shift a date onto the previous or next day.
package calendar

import (
	"time"
)

// noon is the hour that all Dates are normalized to.
const noon = 12

// Date is a calendar day. It is immutable, all methods return new values.
// The zero value is not a valid Date and is used to represent the absence
// of a date.
type Date struct {
	t     time.Time
	valid bool
}

// NewDate returns the Date for the specified year, month and day in loc.
// Out of range values are normalized as per time.Date, so that
// NewDate(2024, 2, 30, loc) is March 1st. A nil loc is treated as time.Local.
func NewDate(year int, month time.Month, day int, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return Date{t: time.Date(year, month, day, noon, 0, 0, 0, loc), valid: true}
}

// FromTime returns the Date containing t, in t's location. The zero time
// yields an invalid Date.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return NewDate(t.Year(), t.Month(), t.Day(), t.Location())
}

// Today returns the current date in loc.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.Now().In(loc))
}

// IsValid returns true if d refers to an actual date.
func (d Date) IsValid() bool {
	return d.valid
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

func (d Date) Location() *time.Location {
	return d.t.Location()
}

// Time returns the time.Time for d, which will always be at noon.
func (d Date) Time() time.Time {
	return d.t
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) Date {
	if !d.IsValid() {
		return d
	}
	return NewDate(d.Year(), d.Month(), d.Day()+n, d.Location())
}

// AddMonths returns the date n months after d, n may be negative. The day of
// the month is clamped to the length of the resulting month, so that
// Jan 31 plus one month is the last day of February.
func (d Date) AddMonths(n int) Date {
	if !d.IsValid() {
		return d
	}
	first := NewDate(d.Year(), d.Month()+time.Month(n), 1, d.Location())
	day := min(d.Day(), DaysInMonth(first.Year(), first.Month()))
	return NewDate(first.Year(), first.Month(), day, d.Location())
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	if !d.IsValid() {
		return d
	}
	return NewDate(d.Year(), d.Month(), 1, d.Location())
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	if !d.IsValid() {
		return d
	}
	return NewDate(d.Year(), d.Month(), DaysInMonth(d.Year(), d.Month()), d.Location())
}

// Before returns true if d is a day earlier than o.
func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

// Equal returns true if d and o refer to the same instant.
func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

// Format formats d using the supplied time package layout. Invalid dates
// are formatted as the empty string.
func (d Date) Format(layout string) string {
	if !d.IsValid() {
		return ""
	}
	return d.t.Format(layout)
}

// String returns d in ISOFormat.
func (d Date) String() string {
	return d.Format(ISOFormat)
}
