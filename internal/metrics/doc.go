// Package metrics collects run diagnostics: runtime memory snapshots,
// worker timing spread statistics and a Prometheus registry that can be
// exported in the text exposition format.
package metrics
