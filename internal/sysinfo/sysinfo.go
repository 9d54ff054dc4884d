// Package sysinfo reports how much hardware parallelism the process may use.
package sysinfo

import "runtime"

// AvailableParallelism returns the number of CPUs this process can run on,
// bounded by GOMAXPROCS. It is always at least 1.
func AvailableParallelism() int {
	n := runtime.GOMAXPROCS(0)
	if affinity, ok := affinityCount(); ok && affinity < n {
		n = affinity
	}
	if n < 1 {
		n = 1
	}
	return n
}
