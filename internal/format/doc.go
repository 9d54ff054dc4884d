// Package format holds the pure formatting helpers shared by the CLI and the
// dashboard: durations, byte counts, thousands separators and progress bars.
package format
