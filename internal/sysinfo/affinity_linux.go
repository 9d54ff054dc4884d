//go:build linux

package sysinfo

import "golang.org/x/sys/unix"

// affinityCount reads the scheduler affinity mask of the calling thread.
func affinityCount() (int, bool) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0, false
	}
	n := set.Count()
	return n, n > 0
}
