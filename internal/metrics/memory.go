package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
	TotalAlloc   uint64 // cumulative bytes allocated
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
		TotalAlloc:   m.TotalAlloc,
	}
}

// MemoryDelta summarizes what happened between two snapshots of a run.
type MemoryDelta struct {
	Allocated  uint64 // bytes allocated during the run
	GCCycles   uint32 // collections completed during the run
	PauseNs    uint64 // GC pause time added during the run
	PeakHeap   uint64 // larger of the two heap readings
	HeapBefore uint64
	HeapAfter  uint64
}

// Delta computes the change from before to after. Counters that went
// backwards are reported as zero.
func Delta(before, after MemorySnapshot) MemoryDelta {
	d := MemoryDelta{
		PeakHeap:   max(before.HeapAlloc, after.HeapAlloc),
		HeapBefore: before.HeapAlloc,
		HeapAfter:  after.HeapAlloc,
	}
	if after.TotalAlloc > before.TotalAlloc {
		d.Allocated = after.TotalAlloc - before.TotalAlloc
	}
	if after.NumGC > before.NumGC {
		d.GCCycles = after.NumGC - before.NumGC
	}
	if after.PauseTotalNs > before.PauseTotalNs {
		d.PauseNs = after.PauseTotalNs - before.PauseTotalNs
	}
	return d
}
