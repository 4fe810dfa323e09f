package ornament

import "sort"

// Monitors returns the sorted distinct monitor indices referenced by the
// config entries, clamped into [0, monitorCount-1]. If no entries reference
// a monitor, it falls back to monitor 0.
func Monitors(entries []Config, monitorCount int) []int {
	seen := make(map[int]bool)
	for _, e := range entries {
		idx := e.Screen
		if idx < 0 {
			idx = 0
		}
		if idx >= monitorCount {
			idx = monitorCount - 1
		}
		seen[idx] = true
	}
	if len(seen) == 0 {
		seen[0] = true
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Distribute partitions n ornament instances across the created surfaces by
// round-robin (instance index mod surface count), returning one contiguous
// group of instance indices per surface.
//
// Distribution deliberately ignores each instance's configured monitor: an
// ornament configured for monitor 2 may be drawn on the surface created for
// monitor 0. This matches the shipped behavior.
func Distribute(n, surfaces int) [][]int {
	groups := make([][]int, surfaces)
	for i := 0; i < n; i++ {
		w := i % surfaces
		groups[w] = append(groups[w], i)
	}
	return groups
}
