package spiralmask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spiralmask "github.com/ajroetker/spiralmask-gomlx"
)

func TestAdditiveBiasValues(t *testing.T) {
	p := spiralmask.MaskParameters{
		SequenceLength: 8,
		LocalWindow:    1,
		Offsets:        []int{3},
		Band:           2,
	}
	rel, err := spiralmask.Build(p)
	require.NoError(t, err)

	values := spiralmask.AdditiveBiasValues(rel)
	require.Len(t, values, 8*8)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			got := values[i*8+j]
			if rel.Permitted(i, j) {
				assert.Equal(t, float32(0), got, "pair (%d, %d)", i, j)
			} else {
				assert.Equal(t, float32(-1e9), got, "pair (%d, %d)", i, j)
			}
		}
	}
}

func TestAdditiveBiasValues_DenseAndIntervalAgree(t *testing.T) {
	p := spiralmask.MaskParameters{
		SequenceLength: 16,
		LocalWindow:    2,
		Offsets:        []int{5, 9},
		Band:           1,
	}
	intervals, err := spiralmask.Build(p)
	require.NoError(t, err)

	assert.Equal(t,
		spiralmask.AdditiveBiasValues(intervals),
		spiralmask.AdditiveBiasValues(intervals.Dense()))
}
