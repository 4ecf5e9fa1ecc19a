package spiralmask

// Relation is an immutable connectivity relation over position pairs:
// Permitted(i, j) reports whether query position i may attend to key
// position j. A relation is fully populated when returned from a builder
// and never mutated afterwards, so it is safe for concurrent readers.
type Relation interface {
	// SeqLen returns the sequence length n the relation was built for.
	SeqLen() int

	// Permitted reports whether query i may attend to key j. Positions
	// outside [0, n) are never permitted.
	Permitted(i, j int) bool
}

// Dense stores the relation as a flat row-major n×n boolean matrix.
// Permitted is O(1); memory is O(n²), acceptable only for moderate n.
type Dense struct {
	n     int
	cells []bool
}

// SeqLen returns the sequence length.
func (d *Dense) SeqLen() int { return d.n }

// Permitted reports whether query i may attend to key j in O(1).
func (d *Dense) Permitted(i, j int) bool {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return false
	}
	return d.cells[i*d.n+j]
}

// Intervals converts the dense matrix to interval form by compacting each
// row's true runs into closed intervals.
func (d *Dense) Intervals() *IntervalRelation {
	rows := make([][]Interval, d.n)
	for i := 0; i < d.n; i++ {
		row := d.cells[i*d.n : (i+1)*d.n]
		var ivs []Interval
		for j := 0; j < d.n; j++ {
			if !row[j] {
				continue
			}
			start := j
			for j+1 < d.n && row[j+1] {
				j++
			}
			ivs = append(ivs, Interval{Lo: start, Hi: j})
		}
		rows[i] = ivs
	}
	return &IntervalRelation{n: d.n, rows: rows}
}

// IntervalRelation stores the relation as a minimal sorted list of closed
// intervals per row. Memory is O(n·k) where k is bounded by
// 2·|offsets|·(band+1) + 1 per row, independent of n; Permitted is O(log k).
// This is the recommended form for large sequence lengths.
type IntervalRelation struct {
	n    int
	rows [][]Interval
}

// SeqLen returns the sequence length.
func (r *IntervalRelation) SeqLen() int { return r.n }

// Permitted reports whether query i may attend to key j by binary search
// over row i's interval starts.
func (r *IntervalRelation) Permitted(i, j int) bool {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return false
	}
	return containsSorted(r.rows[i], j)
}

// Row returns row i's intervals, sorted and non-overlapping. The returned
// slice is shared with the relation and must not be modified.
func (r *IntervalRelation) Row(i int) []Interval {
	if i < 0 || i >= r.n {
		return nil
	}
	return r.rows[i]
}

// Dense expands the interval form into a dense boolean matrix. Both forms
// answer Permitted identically for every pair.
func (r *IntervalRelation) Dense() *Dense {
	cells := make([]bool, r.n*r.n)
	for i, ivs := range r.rows {
		row := cells[i*r.n : (i+1)*r.n]
		for _, iv := range ivs {
			for j := iv.Lo; j <= iv.Hi; j++ {
				row[j] = true
			}
		}
	}
	return &Dense{n: r.n, cells: cells}
}
