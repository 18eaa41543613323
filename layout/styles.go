// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package layout

// TransformProperties are the style properties, standard and vendor
// prefixed, set by TransformStyles.
var TransformProperties = []string{
	"transform",
	"msTransform",
	"MozTransform",
	"WebkitTransform",
}

// TransformStyles returns a style mapping that applies value to the
// standard transform property and to each of its legacy vendor prefixed
// variants.
func TransformStyles(value string) map[string]string {
	styles := make(map[string]string, len(TransformProperties))
	for _, p := range TransformProperties {
		styles[p] = value
	}
	return styles
}

// Environment represents the global scope of a host that renders elements.
type Environment interface {
	// HasGlobal returns true if name is defined in the global scope.
	HasGlobal(name string) bool
}

// IsTransitionEndSupported returns true if env supports transitionend
// events. A nil Environment, ie. one without a window, never does.
func IsTransitionEndSupported(env Environment) bool {
	if env == nil {
		return false
	}
	return env.HasGlobal("TransitionEvent")
}
