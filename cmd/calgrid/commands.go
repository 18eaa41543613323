// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datepicker/calendar"
	"cloudeng.io/datepicker/layout"
	"cloudeng.io/datepicker/layout/browser"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// defaultDaySize is the size, in pixels, of a day cell.
const defaultDaySize = 39

type gridFlags struct {
	CommonFlags
	FirstDay         string       `subcmd:"first-day,,'first day of the week, 0 (Sunday) to 6 or a weekday name'"`
	OutsideDays      optionalBool `subcmd:"outside-days,,'show the days of adjacent months, defaults to the config file value'"`
	Months           int          `subcmd:"months,0,'number of months to display'"`
	TransitionMonths optionalBool `subcmd:"transition-months,,'include the months before and after those displayed, defaults to the config file value'"`
}

type monthsFlags struct {
	CommonFlags
	TransitionMonths optionalBool `subcmd:"transition-months,,'include the months before and after those displayed, defaults to the config file value or true'"`
}

type parseFlags struct {
	CommonFlags
	Format string `subcmd:"format,,'custom date format, as a go time layout, to try before the display and ISO formats'"`
}

type widthFlags struct {
	CommonFlags
}

type measureFlags struct {
	CommonFlags
	Axis      string        `subcmd:"axis,width,'axis to measure: width or height'"`
	BorderBox bool          `subcmd:"border-box,false,'measure the border box rather than the content box'"`
	Margin    bool          `subcmd:"margin,false,'include margins'"`
	Snapshot  bool          `subcmd:"snapshot,false,'read the element and its style in a single query and print them'"`
	Timeout   time.Duration `subcmd:"timeout,30s,'timeout for loading and measuring the page'"`
}

type probeFlags struct {
	CommonFlags
	Transform string        `subcmd:"transform,translateX(0px),'transform value for the printed styles'"`
	Timeout   time.Duration `subcmd:"timeout,30s,'timeout for loading the page'"`
}

// resolveMonth returns the month named by an ISO month or any date
// accepted by calendar.Parse.
func resolveMonth(val, format string) (calendar.Date, error) {
	if m, ok := calendar.ParseMonth(val); ok {
		return m, nil
	}
	if d, ok := calendar.Parse(val, format); ok {
		return d, nil
	}
	return calendar.Date{}, fmt.Errorf("invalid month or date: %q", val)
}

func weekdayHeader(fdow time.Weekday) string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday((int(fdow) + i) % 7).String()[:2]
	}
	return strings.Join(names, " ")
}

func grid(ctx context.Context, values any, args []string) error {
	fv := values.(*gridFlags)
	ctx, cfg, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()

	fdow, err := cfg.firstDayOfWeek(fv.FirstDay)
	if err != nil {
		return err
	}
	month := calendar.Today(time.Local)
	if len(args) == 1 {
		if month, err = resolveMonth(args[0], cfg.DisplayFormat); err != nil {
			return err
		}
	}
	outside := fv.OutsideDays.or(cfg.EnableOutsideDays)
	transition := cfg.transitionMonths(fv.TransitionMonths, false)
	n := cfg.numberOfMonths(fv.Months)

	ctxlog.Logger(ctx).Info("grid", "month", calendar.ToISOMonthString(month), "months", n, "first-day", fdow, "outside-days", outside)

	for i, m := range calendar.Months(month, n, !transition) {
		weeks, err := calendar.MonthWeeks(m, outside, fdow)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %d\n%s\n%s\n", m.Month(), m.Year(), weekdayHeader(fdow), weeks)
	}
	return nil
}

func months(ctx context.Context, values any, args []string) error {
	fv := values.(*monthsFlags)
	ctx, cfg, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()

	month, err := resolveMonth(args[0], cfg.DisplayFormat)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid number of months: %q", args[1])
	}
	transition := cfg.transitionMonths(fv.TransitionMonths, true)
	ctxlog.Logger(ctx).Info("months", "month", calendar.ToISOMonthString(month), "months", n, "transition-months", transition)
	for _, m := range calendar.Months(month, n, !transition) {
		fmt.Fprintln(out, calendar.ToISOMonthString(m))
	}
	return nil
}

func parse(ctx context.Context, values any, args []string) error {
	fv := values.(*parseFlags)
	ctx, cfg, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()

	format := fv.Format
	if len(format) == 0 {
		format = cfg.DisplayFormat
	}
	errs := &errors.M{}
	for _, arg := range args {
		d, ok := calendar.Parse(arg, format)
		if !ok {
			ctxlog.Logger(ctx).Warn("failed to parse date", "value", arg, "format", format)
			errs.Append(fmt.Errorf("%q: not a valid date", arg))
			continue
		}
		fmt.Fprintf(out, "%s %s %s %s\n", arg, calendar.ToISODateString(d), calendar.ToISOMonthString(d), d.Weekday())
	}
	return errs.Err()
}

func width(ctx context.Context, values any, args []string) error {
	fv := values.(*widthFlags)
	_, cfg, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()

	daySize := cfg.DaySize
	if daySize == 0 {
		daySize = defaultDaySize
	}
	if len(args) == 1 {
		if daySize, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid day size: %q: %w", args[0], err)
		}
	}
	fmt.Fprintln(out, calendar.CalendarMonthWidth(daySize))
	return nil
}

func measure(ctx context.Context, values any, args []string) error {
	fv := values.(*measureFlags)
	ctx, _, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()

	axis, err := layout.ParseAxis(fv.Axis)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, fv.Timeout)
	defer cancel()
	ctx, closeBrowser, err := browser.Open(ctx, args[0])
	if err != nil {
		return err
	}
	defer closeBrowser()

	selector := args[1]
	var size float64
	if fv.Snapshot {
		s, err := browser.TakeSnapshot(ctx, selector)
		if err != nil {
			return err
		}
		if s != nil {
			fmt.Fprintln(out, s)
			size = layout.CalculateDimension(s, axis, fv.BorderBox, fv.Margin)
		}
	} else {
		size, err = browser.Measure(ctx, selector, axis, fv.BorderBox, fv.Margin, false)
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "%s %s: %v\n", selector, axis, size)
	return nil
}

func probe(ctx context.Context, values any, args []string) error {
	fv := values.(*probeFlags)
	ctx, _, cleanup, err := setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(ctx, fv.Timeout)
	defer cancel()
	ctx, closeBrowser, err := browser.Open(ctx, args[0])
	if err != nil {
		return err
	}
	defer closeBrowser()

	fmt.Fprintf(out, "transitionend supported: %v\n", layout.IsTransitionEndSupported(browser.NewEnvironment(ctx)))
	printStyles(layout.TransformStyles(fv.Transform))
	return nil
}

func printStyles(styles map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(styles)) {
		fmt.Fprintf(out, "%s: %s\n", k, styles[k])
	}
}
