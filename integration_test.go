//go:build integration

package spiralmask_test

import (
	"fmt"
	"testing"

	"github.com/gomlx/gomlx/backends"
	"github.com/gomlx/gomlx/backends/xla"
	"github.com/gomlx/gomlx/pkg/core/dtypes"
	"github.com/gomlx/gomlx/pkg/core/graph"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spiralmask "github.com/ajroetker/spiralmask-gomlx"
)

// getBackend returns the XLA backend for testing.
func getBackend() backends.Backend {
	// Auto-install XLA PJRT if not available.
	if err := xla.AutoInstall(); err != nil {
		panic(fmt.Sprintf("failed to auto-install XLA: %v", err))
	}
	// Use default config which will pick up the versioned plugin.
	backends.DefaultConfig = ""
	return backends.MustNew()
}

// TestAdditiveBiasGraphBuild verifies that mask materialization produces
// graph nodes with the [1, 1, seq_len, seq_len] shape attention expects.
func TestAdditiveBiasGraphBuild(t *testing.T) {
	p := spiralmask.MaskParameters{
		SequenceLength: 16,
		LocalWindow:    2,
		Offsets:        []int{4, 8},
		Band:           1,
	}
	rel, err := spiralmask.Build(p)
	require.NoError(t, err)

	backend := getBackend()
	g := graph.NewGraph(backend, "spiral_bias_test")

	bias := spiralmask.AdditiveBias(g, rel, dtypes.Float32)
	assert.Equal(t, []int{1, 1, 16, 16}, bias.Shape().Dimensions)
	assert.Equal(t, dtypes.Float32, bias.DType())

	halfBias := spiralmask.AdditiveBias(g, rel, dtypes.Float16)
	assert.Equal(t, dtypes.Float16, halfBias.DType())

	boolMask := spiralmask.BooleanMask(g, rel)
	assert.Equal(t, []int{1, 1, 16, 16}, boolMask.Shape().Dimensions)
	assert.Equal(t, dtypes.Bool, boolMask.DType())

	t.Logf("Graph built successfully!")
	t.Logf("  Bias shape: %s", bias.Shape())
}

// TestAdditiveBiasExecution runs the bias node through a real backend and
// checks the materialized values against the backend-free reference.
func TestAdditiveBiasExecution(t *testing.T) {
	p := spiralmask.MaskParameters{
		SequenceLength: 8,
		LocalWindow:    1,
		Offsets:        []int{3},
		Band:           2,
	}
	rel, err := spiralmask.Build(p)
	require.NoError(t, err)

	backend := getBackend()

	exec := graph.NewExec(backend, func(scores *graph.Node) *graph.Node {
		g := scores.Graph()
		return graph.Add(scores, spiralmask.AdditiveBias(g, rel, dtypes.Float32))
	})

	// Zero scores, so the output is exactly the bias.
	scoresData := make([]float32, 8*8)
	scores := tensors.FromFlatDataAndDimensions(scoresData, 1, 1, 8, 8)

	results := exec.MustExec(scores)
	require.Len(t, results, 1)

	output := results[0]
	require.Equal(t, []int{1, 1, 8, 8}, output.Shape().Dimensions)

	want := spiralmask.AdditiveBiasValues(rel)
	got := output.Value().([][][][]float32)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.Equal(t, want[i*8+j], got[0][0][i][j], "pair (%d, %d)", i, j)
		}
	}
}
