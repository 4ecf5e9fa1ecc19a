package spiralmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "single",
			in:   []Interval{{2, 5}},
			want: []Interval{{2, 5}},
		},
		{
			name: "overlapping",
			in:   []Interval{{0, 3}, {2, 6}},
			want: []Interval{{0, 6}},
		},
		{
			name: "adjacent merge",
			in:   []Interval{{0, 2}, {3, 4}},
			want: []Interval{{0, 4}},
		},
		{
			name: "disjoint stay apart",
			in:   []Interval{{0, 2}, {4, 5}},
			want: []Interval{{0, 2}, {4, 5}},
		},
		{
			name: "unsorted input",
			in:   []Interval{{7, 9}, {0, 1}, {3, 3}, {2, 2}},
			want: []Interval{{0, 3}, {7, 9}},
		},
		{
			name: "contained interval",
			in:   []Interval{{0, 9}, {3, 4}},
			want: []Interval{{0, 9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeIntervals(tt.in))
		})
	}
}

func TestContainsSorted(t *testing.T) {
	ivs := []Interval{{1, 3}, {6, 6}, {8, 11}}

	wantTrue := []int{1, 2, 3, 6, 8, 9, 10, 11}
	wantFalse := []int{-5, 0, 4, 5, 7, 12, 100}

	for _, j := range wantTrue {
		assert.True(t, containsSorted(ivs, j), "expected %d to be covered", j)
	}
	for _, j := range wantFalse {
		assert.False(t, containsSorted(ivs, j), "expected %d to be uncovered", j)
	}

	assert.False(t, containsSorted(nil, 0))
}

func TestRowIntervals_BandClampsToRangeEnds(t *testing.T) {
	p := MaskParameters{SequenceLength: 8, LocalWindow: 1, Offsets: []int{3}, Band: 2}

	// Row 3: window [2,3], spiral center 0 with band [-2,2] clamped to [0,2].
	assert.Equal(t, []Interval{{0, 3}}, rowIntervals(p, 3, false))

	// Row 0: window [0,0]; center -3 with band entirely below range.
	assert.Equal(t, []Interval{{0, 0}}, rowIntervals(p, 0, false))
}
