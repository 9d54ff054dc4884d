// Package ui provides theme and color support for the console and the
// dashboard. Both presentation layers read the active theme from here, so
// --no-color and NO_COLOR are honored in one place.
package ui
