package spiralmask

import "sort"

// Interval is a closed range [Lo, Hi] of key positions. Lo <= Hi always
// holds for intervals stored in a relation.
type Interval struct {
	Lo, Hi int
}

// Len returns the number of positions covered by the interval.
func (iv Interval) Len() int { return iv.Hi - iv.Lo + 1 }

// Contains reports whether j falls inside the interval.
func (iv Interval) Contains(j int) bool { return j >= iv.Lo && j <= iv.Hi }

// mergeIntervals coalesces a list of intervals into the minimal sorted,
// non-overlapping equivalent. Adjacent intervals (next.Lo == current.Hi+1)
// merge as well, so the result has no two intervals that could be joined.
// The input slice is sorted in place and reused for the output.
func mergeIntervals(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	sort.Slice(ivs, func(a, b int) bool { return ivs[a].Lo < ivs[b].Lo })
	merged := ivs[:1]
	for _, iv := range ivs[1:] {
		last := &merged[len(merged)-1]
		if iv.Lo <= last.Hi+1 {
			if iv.Hi > last.Hi {
				last.Hi = iv.Hi
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// containsSorted reports whether j is covered by a sorted, non-overlapping
// interval list. Binary search over interval starts: find the last interval
// whose Lo <= j, then check its Hi.
func containsSorted(ivs []Interval, j int) bool {
	idx := sort.Search(len(ivs), func(k int) bool { return ivs[k].Lo > j })
	if idx == 0 {
		return false
	}
	return ivs[idx-1].Hi >= j
}
