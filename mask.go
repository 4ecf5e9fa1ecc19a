package spiralmask

import (
	"runtime"
	"sync"
)

// Build constructs the spiral connectivity relation in interval form, the
// recommended representation for large sequence lengths.
//
// For each query position i the permitted key set is the union of:
//   - the causal local window [max(0, i-w), i],
//   - each spiral center i-o that lands in [0, n), and
//   - the band i-o±1 … i-o±b around each center, every member
//     bounds-checked individually (band members are generated even when the
//     center itself is out of range).
//
// Band members are not clamped to the causal side: whenever band > offset a
// row permits keys beyond i. Callers who need strict causality everywhere
// should either keep band <= min(offsets) or use BuildCausal, which is the
// explicitly named clamped variant.
func Build(p MaskParameters) (*IntervalRelation, error) {
	return build(p, false)
}

// BuildCausal constructs the causal-clamped variant: the same connectivity
// as Build with every row intersected with [0, i]. Never permits j > i.
func BuildCausal(p MaskParameters) (*IntervalRelation, error) {
	return build(p, true)
}

// BuildDense constructs the relation as a dense n×n boolean matrix, the
// literal form. O(n²) memory; prefer Build for large n.
func BuildDense(p MaskParameters) (*Dense, error) {
	rel, err := Build(p)
	if err != nil {
		return nil, err
	}
	return rel.Dense(), nil
}

// BuildCausalDense is BuildCausal materialized densely.
func BuildCausalDense(p MaskParameters) (*Dense, error) {
	rel, err := BuildCausal(p)
	if err != nil {
		return nil, err
	}
	return rel.Dense(), nil
}

func build(p MaskParameters, clampCausal bool) (*IntervalRelation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.SequenceLength
	rows := make([][]Interval, n)

	// Rows are independent, so shard them across workers. Each worker
	// writes a disjoint range of rows; the WaitGroup join is the only
	// synchronization needed before the relation is complete.
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				rows[i] = rowIntervals(p, i, clampCausal)
			}
		}(start, end)
	}
	wg.Wait()

	return &IntervalRelation{n: n, rows: rows}, nil
}

// rowIntervals computes the permitted key set for query row i as a minimal
// sorted interval list.
func rowIntervals(p MaskParameters, i int, clampCausal bool) []Interval {
	n := p.SequenceLength

	ivs := make([]Interval, 0, len(p.Offsets)+1)

	// Causal local window: always a single in-range interval ending at i.
	lo := i - p.LocalWindow
	if lo < 0 {
		lo = 0
	}
	ivs = append(ivs, Interval{Lo: lo, Hi: i})

	// Spiral center plus band. The set {j0-b, …, j0, …, j0+b} is contiguous,
	// so per-member bounds checks reduce to clamping the range ends; a range
	// entirely out of [0, n) contributes nothing (this is how offsets >= n
	// become no-ops rather than errors).
	for _, o := range p.Offsets {
		j0 := i - o
		bandLo, bandHi := j0-p.Band, j0+p.Band
		if bandLo < 0 {
			bandLo = 0
		}
		if clampCausal && bandHi > i {
			bandHi = i
		}
		if bandHi > n-1 {
			bandHi = n - 1
		}
		if bandLo > bandHi {
			continue
		}
		ivs = append(ivs, Interval{Lo: bandLo, Hi: bandHi})
	}

	return mergeIntervals(ivs)
}
