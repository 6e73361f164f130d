// SPDX-License-Identifier: EPL-2.0

// Package memtrack observes process-wide heap totals for diagnostics. It is
// a passive counter: it never mutates anything it observes and is meant to
// be sampled around a region of interest, not on a hot path.
package memtrack

import "runtime"

// Implemented reports whether the platform counter is real. The Go runtime
// always tracks heap totals, so this is a constant; it exists so callers
// can guard their reporting uniformly.
const Implemented = true

// Snapshot holds cumulative heap totals at a point in time.
type Snapshot struct {
	AllocBytes   uint64 // total bytes ever allocated
	FreeBytes    uint64 // total bytes ever freed
	CurrentBytes uint64 // live bytes (AllocBytes - FreeBytes)
}

// Take captures the current heap totals.
func Take() Snapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Snapshot{
		AllocBytes:   ms.TotalAlloc,
		FreeBytes:    ms.TotalAlloc - ms.HeapAlloc,
		CurrentBytes: ms.HeapAlloc,
	}
}

// Diff returns the allocation activity between s and now.
func (s Snapshot) Diff() Snapshot {
	now := Take()
	alloc := now.AllocBytes - s.AllocBytes
	freed := now.FreeBytes - s.FreeBytes
	return Snapshot{
		AllocBytes:   alloc,
		FreeBytes:    freed,
		CurrentBytes: alloc - freed,
	}
}

// Active reports whether a Diff result recorded any allocation activity.
func (s Snapshot) Active() bool {
	return s.AllocBytes > 0 || s.FreeBytes > 0
}
