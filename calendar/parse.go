// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"time"
)

// Parse parses val, in the local time zone, as per ParseIn.
func Parse(val, customFormat string) (Date, bool) {
	return ParseIn(val, customFormat, time.Local)
}

// ParseIn parses val using customFormat, if not empty, followed by
// DisplayFormat and ISOFormat. Formats are time package layouts and val
// must match one of them exactly, trailing text or out of range values,
// such as 2019-02-29, are rejected. The returned date is normalized to noon,
// false is returned if none of the formats match.
func ParseIn(val, customFormat string, loc *time.Location) (Date, bool) {
	if loc == nil {
		loc = time.Local
	}
	formats := []string{DisplayFormat, ISOFormat}
	if len(customFormat) > 0 {
		formats = []string{customFormat, DisplayFormat, ISOFormat}
	}
	for _, layout := range formats {
		t, err := time.ParseInLocation(layout, val, loc)
		if err == nil {
			return NewDate(t.Year(), t.Month(), t.Day(), loc), true
		}
	}
	return Date{}, false
}

// ParseMonth parses val in ISOMonthFormat, returning the first day of
// that month.
func ParseMonth(val string) (Date, bool) {
	t, err := time.ParseInLocation(ISOMonthFormat, val, time.Local)
	if err != nil {
		return Date{}, false
	}
	return NewDate(t.Year(), t.Month(), 1, time.Local), true
}

// ToISODateString formats d in ISOFormat, returning the empty string if
// d is not valid.
func ToISODateString(d Date) string {
	return d.Format(ISOFormat)
}

// ToISOMonthString formats d in ISOMonthFormat, returning the empty string if
// d is not valid.
func ToISOMonthString(d Date) string {
	return d.Format(ISOMonthFormat)
}

// ISODateString parses val as per Parse, using currentFormat as the custom
// format, and formats the result in ISOFormat. It returns the empty
// string if val cannot be parsed.
func ISODateString(val, currentFormat string) string {
	d, _ := Parse(val, currentFormat)
	return ToISODateString(d)
}

// ISOMonthString is like ISODateString but formats the result in
// ISOMonthFormat.
func ISOMonthString(val, currentFormat string) string {
	d, _ := Parse(val, currentFormat)
	return ToISOMonthString(d)
}

// IsSameDay returns true if a and b are both valid and refer to the same
// calendar day. The time zones of a and b are not taken into account.
func IsSameDay(a, b Date) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	// least significant, and most likely to differ, first.
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

// IsSameMonth returns true if a and b are both valid and fall in the
// same month of the same year.
func IsSameMonth(a, b Date) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	return a.Month() == b.Month() && a.Year() == b.Year()
}
