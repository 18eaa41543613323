// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package layout provides helpers for measuring rendered elements and for
// building the styles used to animate a date picker. The host layout engine
// is accessed via the Element and Environment interfaces, see
// cloudeng.io/datepicker/layout/browser for an implementation backed by
// Chrome.
package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis is the axis along which an element is measured.
type Axis int

const (
	Width Axis = iota
	Height
)

func (a Axis) String() string {
	if a == Width {
		return "width"
	}
	return "height"
}

// ParseAxis parses "width" or "height".
func ParseAxis(val string) (Axis, error) {
	switch strings.ToLower(val) {
	case "width":
		return Width, nil
	case "height":
		return Height, nil
	}
	return 0, fmt.Errorf("invalid axis: %q, must be width or height", val)
}

// edges returns the names of the leading and trailing edges for the axis as
// used in CSS property names.
func (a Axis) edges() (string, string) {
	if a == Width {
		return "left", "right"
	}
	return "top", "bottom"
}

// Style represents an element's computed style as a map of CSS property
// names, eg. "padding-left", to their values, eg. "4px".
type Style map[string]string

// Pixels returns the numeric value of the named property, read in the same
// manner as javascript's parseFloat, so that "4.5px" is 4.5. Missing or
// non-numeric values are returned as zero.
func (s Style) Pixels(name string) float64 {
	return parseLeadingFloat(s[name])
}

// Element represents a rendered element.
type Element interface {
	// OffsetWidth and OffsetHeight return the element's layout size
	// including padding and borders.
	OffsetWidth() float64
	OffsetHeight() float64
	// ComputedStyle returns the element's computed style. Implementations
	// may defer the potentially expensive layout query until called.
	ComputedStyle() Style
}

// CalculateDimension returns the size of el along axis. The size starts
// from the element's offset size, ie. its border-box, and unless borderBox
// is set, padding and borders on both edges are subtracted to yield the
// content size. If withMargin is set, the margins on both edges are added.
// The computed style is only requested when padding, border or margins are
// needed. A nil Element has a size of zero.
func CalculateDimension(el Element, axis Axis, borderBox, withMargin bool) float64 {
	if el == nil {
		return 0
	}
	start, end := axis.edges()

	var style Style
	if !borderBox || withMargin {
		style = el.ComputedStyle()
	}

	size := el.OffsetHeight()
	if axis == Width {
		size = el.OffsetWidth()
	}

	if !borderBox {
		size -= style.Pixels("padding-"+start) +
			style.Pixels("padding-"+end) +
			style.Pixels("border-"+start+"-width") +
			style.Pixels("border-"+end+"-width")
	}

	if withMargin {
		size += style.Pixels("margin-"+start) + style.Pixels("margin-"+end)
	}
	return size
}

// parseLeadingFloat parses the longest prefix of val that is a decimal
// floating point number, ignoring leading white space.
func parseLeadingFloat(val string) float64 {
	val = strings.TrimSpace(val)
	i := 0
	if i < len(val) && (val[i] == '+' || val[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(val) && isDigit(val[i]); i++ {
		digits++
	}
	if i < len(val) && val[i] == '.' {
		i++
		for ; i < len(val) && isDigit(val[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(val) && (val[i] == 'e' || val[i] == 'E') {
		j := i + 1
		if j < len(val) && (val[j] == '+' || val[j] == '-') {
			j++
		}
		if j < len(val) && isDigit(val[j]) {
			for j < len(val) && isDigit(val[j]) {
				j++
			}
			i = j
		}
	}
	f, err := strconv.ParseFloat(val[:i], 64)
	if err != nil {
		return 0
	}
	return f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
