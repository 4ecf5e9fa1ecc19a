package spiralmask

import (
	"github.com/gomlx/gomlx/pkg/core/dtypes"
	"github.com/gomlx/gomlx/pkg/core/graph"
)

// disallowed is the additive-bias sentinel for masked-out positions. Large
// enough to zero attention after softmax, small enough to stay finite in
// float16.
const disallowed = float32(-1e9)

// AdditiveBiasValues flattens the relation into row-major float32 bias
// values: 0 where attention is permitted, -1e9 where it is not. Pure and
// backend-free; AdditiveBias wraps it into a graph node.
func AdditiveBiasValues(rel Relation) []float32 {
	n := rel.SeqLen()
	values := make([]float32, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !rel.Permitted(i, j) {
				values[i*n+j] = disallowed
			}
		}
	}
	return values
}

// AdditiveBias converts the relation into a bias node of shape
// [1, 1, seq_len, seq_len] to be added to attention scores before softmax:
//   - bias[i][j] = 0 where rel.Permitted(i, j)
//   - bias[i][j] = -1e9 otherwise
func AdditiveBias(g *graph.Graph, rel Relation, dtype dtypes.DType) *graph.Node {
	n := rel.SeqLen()
	biasNode := graph.Const(g, AdditiveBiasValues(rel))
	biasNode = graph.Reshape(biasNode, 1, 1, n, n)
	return graph.ConvertDType(biasNode, dtype)
}

// BooleanMask converts the relation into a boolean node of shape
// [1, 1, seq_len, seq_len] for consumers that take a boolean mask (e.g.
// MaskedSoftmax-style attention), avoiding the additive -1e9 trick.
func BooleanMask(g *graph.Graph, rel Relation) *graph.Node {
	n := rel.SeqLen()
	values := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			values[i*n+j] = rel.Permitted(i, j)
		}
	}
	maskNode := graph.Const(g, values)
	return graph.Reshape(maskNode, 1, 1, n, n)
}
