// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calgrid displays the month grids, month sequences and date
// strings used by a date picker and measures date picker elements rendered
// in a browser.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: calgrid
summary: display and measure date picker calendars
commands:
  - name: grid
    summary: print the weeks of the month containing the specified date or ISO month, the current month is used by default
    arguments:
      - "[month]"
  - name: months
    summary: list the months displayed by a multi-month date picker
    arguments:
      - <month>
      - <number-of-months>
  - name: parse
    summary: parse dates in the display, ISO or a custom format and print them as ISO dates and months
    arguments:
      - <date>
      - ...
  - name: width
    summary: print the rendered width of a month whose day cells are the specified size, the configured day size is used by default
    arguments:
      - "[day-size]"
  - name: measure
    summary: measure the width or height of the element matching a CSS selector in a web page
    arguments:
      - <url>
      - <selector>
  - name: probe
    summary: report whether a web page supports transitionend events and print the transform styles for an animation
    arguments:
      - <url>
`

var out io.Writer = os.Stdout

func newCommandSet() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("grid").MustRunner(grid, &gridFlags{})
	cmdSet.Set("months").MustRunner(months, &monthsFlags{})
	cmdSet.Set("parse").MustRunner(parse, &parseFlags{})
	cmdSet.Set("width").MustRunner(width, &widthFlags{})
	cmdSet.Set("measure").MustRunner(measure, &measureFlags{})
	cmdSet.Set("probe").MustRunner(probe, &probeFlags{})
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet())
}
