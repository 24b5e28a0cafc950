package ucdparse

import (
	"sort"
)

// RangeCollector is a type to collect character ranges during iteration of
// UCD files, or from any other source, and later retrieve them as a sorted
// list of disjoint ranges.
type RangeCollector struct {
	ranges [][2]rune
	dirty  bool // ranges need sorting and merging
}

// Append a range of runes to a range collector. A single
// character is denoted by l == r. Ranges may be appended in any order and
// may overlap.
func (rc *RangeCollector) Append(l, r rune) {
	if r < l {
		l, r = r, l
	}
	rc.ranges = append(rc.ranges, [2]rune{l, r})
	rc.dirty = true
}

// Len returns the number of disjoint ranges collected so far.
func (rc *RangeCollector) Len() int {
	return len(rc.Ranges())
}

// Ranges returns the collected ranges, sorted by their lower bound. Overlapping
// and adjacent ranges are merged.
func (rc *RangeCollector) Ranges() [][2]rune {
	if !rc.dirty {
		return rc.ranges
	}
	sort.Slice(rc.ranges, func(i, j int) bool {
		return rc.ranges[i][0] < rc.ranges[j][0]
	})
	merged := rc.ranges[:0]
	for _, r := range rc.ranges {
		if n := len(merged); n > 0 && r[0] <= merged[n-1][1]+1 {
			if r[1] > merged[n-1][1] { // range extends previous range
				merged[n-1][1] = r[1]
			}
			continue
		}
		merged = append(merged, r)
	}
	rc.ranges = merged
	rc.dirty = false
	return rc.ranges
}
