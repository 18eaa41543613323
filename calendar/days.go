// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

const (
	// DisplayFormat is the human readable format used by date inputs.
	DisplayFormat = "01/02/2006"
	// ISOFormat is the ISO-8601 calendar date format.
	ISOFormat = "2006-01-02"
	// ISOMonthFormat is the ISO-8601 calendar month format.
	ISOMonthFormat = "2006-01"
	// CalendarMonthPadding is the padding, in pixels, on either side
	// of a rendered month.
	CalendarMonthPadding = 9
)

// Weekdays lists the valid values for the first day of the week.
var Weekdays = []time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

var weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month time.Month) int {
	return datetime.DaysInMonth(year, datetime.Month(month))
}

// ParseWeekday parses a weekday in either numeric form, 0 (Sunday) to
// 6 (Saturday), or as a name or prefix of a name of at least two letters,
// eg. "Mo", "tue" or "Wednesday", in either lower or upper case.
func ParseWeekday(val string) (time.Weekday, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("invalid weekday: %d", n)
		}
		return time.Weekday(n), nil
	}
	lc := strings.ToLower(val)
	if len(lc) >= 2 {
		for i := range weekdays {
			if strings.HasPrefix(weekdays[i], lc) {
				return time.Weekday(i), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", val)
}

// mod returns the non-negative remainder of a/n.
func mod(a, n int) int {
	return ((a % n) + n) % n
}
