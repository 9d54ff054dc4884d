// Package sysmon samples system-wide CPU and memory usage while a run is in
// progress, and describes the host the run executes on.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	// PerCore holds one busy percentage per logical CPU, when available.
	PerCore []float64
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, true); err == nil && len(pcts) > 0 {
		s.PerCore = pcts
		var total float64
		for _, p := range pcts {
			total += p
		}
		s.CPUPercent = total / float64(len(pcts))
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Host describes the machine's processors.
type Host struct {
	Model         string
	PhysicalCores int
	LogicalCores  int
}

// DescribeHost reports the CPU model and core counts. Fields that cannot be
// read are left empty.
func DescribeHost() Host {
	var h Host
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.Model = infos[0].ModelName
	}
	if n, err := cpu.Counts(false); err == nil {
		h.PhysicalCores = n
	}
	if n, err := cpu.Counts(true); err == nil {
		h.LogicalCores = n
	}
	return h
}
