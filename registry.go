package spiralmask

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Names of the built-in construction variants.
const (
	// VariantSpiral is the faithful construction: band members may reach
	// beyond the query position when band > offset.
	VariantSpiral = "spiral"

	// VariantSpiralCausal clamps every row to [0, i]. Requesting it by name
	// keeps the two behaviors from ever being conflated.
	VariantSpiralCausal = "spiral-causal"
)

// VariantBuilder constructs a connectivity relation from mask parameters.
type VariantBuilder func(p MaskParameters) (Relation, error)

// registry holds all registered variant builders.
var (
	registry   = make(map[string]VariantBuilder)
	registryMu sync.RWMutex
)

func init() {
	RegisterVariant(VariantSpiral, func(p MaskParameters) (Relation, error) { return Build(p) })
	RegisterVariant(VariantSpiralCausal, func(p MaskParameters) (Relation, error) { return BuildCausal(p) })
}

// RegisterVariant registers a construction variant under a name. Later
// registrations for the same name replace earlier ones.
func RegisterVariant(name string, builder VariantBuilder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = builder
}

// GetVariant returns the builder registered under name.
func GetVariant(name string) (VariantBuilder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	builder, ok := registry[name]
	return builder, ok
}

// ListVariants returns all registered variant names, sorted.
func ListVariants() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewRelation builds a relation using the named variant.
func NewRelation(variant string, p MaskParameters) (Relation, error) {
	builder, ok := GetVariant(variant)
	if !ok {
		return nil, errors.Errorf("unsupported mask variant %q; supported variants: %v", variant, ListVariants())
	}
	return builder(p)
}
