// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

// Months returns the months to display for a picker showing numberOfMonths
// months starting at initialMonth. Unless withoutTransitionMonths is set,
// an extra month is added before and after the requested range so that
// transitions between months can be animated, ie. numberOfMonths+2 months
// starting at the month before initialMonth are returned.
func Months(initialMonth Date, numberOfMonths int, withoutTransitionMonths bool) []Date {
	numberOfMonths = max(numberOfMonths, 0)
	month := initialMonth
	n := numberOfMonths
	if !withoutTransitionMonths {
		month = month.AddMonths(-1)
		n += 2
	}
	months := make([]Date, 0, n)
	for i := 0; i < n; i++ {
		months = append(months, month)
		month = month.AddMonths(1)
	}
	return months
}

// CalendarMonthWidth returns the width, in pixels, of a rendered month
// whose day cells are daySize pixels wide. Each cell has a one pixel
// border, and the month is padded by CalendarMonthPadding on either side.
func CalendarMonthWidth(daySize int) int {
	return 7*(daySize+1) + 2*(CalendarMonthPadding+1)
}
