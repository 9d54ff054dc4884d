//go:build !linux

package sysinfo

func affinityCount() (int, bool) { return 0, false }
