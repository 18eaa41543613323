// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package browser

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/datepicker/layout"
	"cloudeng.io/logging/ctxlog"
	"github.com/chromedp/cdproto/css"
	"github.com/chromedp/chromedp"
	"github.com/go-json-experiment/json"
)

// BoxProperties are the computed style properties that contribute to an
// element's dimensions.
var BoxProperties = []string{
	"padding-left", "padding-right", "padding-top", "padding-bottom",
	"border-left-width", "border-right-width", "border-top-width", "border-bottom-width",
	"margin-left", "margin-right", "margin-top", "margin-bottom",
}

type measurement struct {
	Found        bool              `json:"found"`
	OffsetWidth  float64           `json:"offsetWidth"`
	OffsetHeight float64           `json:"offsetHeight"`
	Style        map[string]string `json:"style,omitempty"`
}

const measureScript = `(function(sel, props) {
	const node = document.querySelector(sel);
	if (!node) {
		return {found: false};
	}
	const result = {found: true, offsetWidth: node.offsetWidth, offsetHeight: node.offsetHeight};
	if (props.length > 0) {
		const style = window.getComputedStyle(node);
		result.style = {};
		for (const p of props) {
			result.style[p] = style.getPropertyValue(p);
		}
	}
	return result;
})(%s, %s);`

func measure(ctx context.Context, selector string, props []string) (measurement, error) {
	var m measurement
	if props == nil {
		props = []string{}
	}
	plist, err := json.Marshal(props)
	if err != nil {
		return m, err
	}
	var raw []byte
	expr := fmt.Sprintf(measureScript, jsString(selector), plist)
	if err := chromedp.Run(ctx, chromedp.Evaluate(expr, &raw)); err != nil {
		return m, fmt.Errorf("failed to measure %q: %w", selector, err)
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("failed to decode measurement for %q: %w", selector, err)
	}
	return m, nil
}

// Element is a layout.Element for the first node in the current page that
// matches a CSS selector. Its offset sizes are read when it is created
// and its computed style is read on first use. Element retains the
// context it was created with, which must remain valid while it is used.
type Element struct {
	ctx          context.Context
	selector     string
	offsetWidth  float64
	offsetHeight float64
	style        layout.Style
}

// Query returns the Element matching selector, or nil if there is no
// such element.
func Query(ctx context.Context, selector string) (*Element, error) {
	m, err := measure(ctx, selector, nil)
	if err != nil {
		return nil, err
	}
	if !m.Found {
		return nil, nil
	}
	return &Element{
		ctx:          ctx,
		selector:     selector,
		offsetWidth:  m.OffsetWidth,
		offsetHeight: m.OffsetHeight,
	}, nil
}

func (e *Element) Selector() string {
	return e.selector
}

// OffsetWidth implements layout.Element.
func (e *Element) OffsetWidth() float64 {
	return e.offsetWidth
}

// OffsetHeight implements layout.Element.
func (e *Element) OffsetHeight() float64 {
	return e.offsetHeight
}

// ComputedStyle implements layout.Element. The element is not waited for,
// if it no longer matches its selector, or the style cannot be read, the
// failure is logged and an empty Style is returned.
func (e *Element) ComputedStyle() layout.Style {
	if e.style != nil {
		return e.style
	}
	var props []*css.ComputedStyleProperty
	if err := chromedp.Run(e.ctx, chromedp.ComputedStyle(e.selector, &props, chromedp.ByQuery, chromedp.AtLeast(0))); err != nil {
		ctxlog.Logger(e.ctx).Warn("failed to read computed style", "selector", e.selector, "error", err)
		return layout.Style{}
	}
	e.style = make(layout.Style, len(props))
	for _, p := range props {
		e.style[p.Name] = p.Value
	}
	return e.style
}

// Snapshot is a layout.Element whose offset sizes and box related computed
// style properties were all read in a single round trip to the browser.
type Snapshot struct {
	Selector string
	Width    float64
	Height   float64
	Style    layout.Style
}

// OffsetWidth implements layout.Element.
func (s *Snapshot) OffsetWidth() float64 {
	return s.Width
}

// OffsetHeight implements layout.Element.
func (s *Snapshot) OffsetHeight() float64 {
	return s.Height
}

// ComputedStyle implements layout.Element.
func (s *Snapshot) ComputedStyle() layout.Style {
	return s.Style
}

func (s *Snapshot) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s: offset %vx%v", s.Selector, s.Width, s.Height)
	for _, p := range BoxProperties {
		if v, ok := s.Style[p]; ok {
			fmt.Fprintf(&out, " %s=%s", p, v)
		}
	}
	return out.String()
}

// TakeSnapshot returns a Snapshot of the element matching selector, or nil
// if there is no such element.
func TakeSnapshot(ctx context.Context, selector string) (*Snapshot, error) {
	m, err := measure(ctx, selector, BoxProperties)
	if err != nil {
		return nil, err
	}
	if !m.Found {
		return nil, nil
	}
	return &Snapshot{
		Selector: selector,
		Width:    m.OffsetWidth,
		Height:   m.OffsetHeight,
		Style:    layout.Style(m.Style),
	}, nil
}

// Measure returns the dimension, as per layout.CalculateDimension, of the
// element matching selector. A missing element has a size of zero. If
// snapshot is set the element is read using TakeSnapshot rather than Query.
func Measure(ctx context.Context, selector string, axis layout.Axis, borderBox, withMargin, snapshot bool) (float64, error) {
	var el layout.Element
	if snapshot {
		s, err := TakeSnapshot(ctx, selector)
		if err != nil {
			return 0, err
		}
		if s != nil {
			el = s
		}
	} else {
		e, err := Query(ctx, selector)
		if err != nil {
			return 0, err
		}
		if e != nil {
			el = e
		}
	}
	if el == nil {
		ctxlog.Logger(ctx).Info("no element found", "selector", selector)
	}
	return layout.CalculateDimension(el, axis, borderBox, withMargin), nil
}

// Environment is a layout.Environment for the page loaded in a chromedp
// context.
type Environment struct {
	ctx context.Context
}

// NewEnvironment returns an Environment for the page loaded in ctx.
func NewEnvironment(ctx context.Context) *Environment {
	return &Environment{ctx: ctx}
}

// HasGlobal implements layout.Environment. Failures to evaluate the
// query are logged and reported as false.
func (e *Environment) HasGlobal(name string) bool {
	var ok bool
	expr := fmt.Sprintf("typeof window !== 'undefined' && (%s in window)", jsString(name))
	if err := chromedp.Run(e.ctx, chromedp.Evaluate(expr, &ok)); err != nil {
		ctxlog.Logger(e.ctx).Warn("failed to query global scope", "name", name, "error", err)
		return false
	}
	return ok
}
