package spiralmask

import "github.com/pkg/errors"

// Sentinel errors reported by parameter validation. Callers can test for
// them with errors.Is; the values returned by Validate carry additional
// context wrapped around these.
var (
	// ErrInvalidParameter indicates a sequence length, local window, or band
	// outside its legal range.
	ErrInvalidParameter = errors.New("spiralmask: invalid parameter")

	// ErrMissingOffsets indicates absent or empty spiral offsets. A purely
	// causal/local mask must be requested explicitly, not by omitting offsets.
	ErrMissingOffsets = errors.New("spiralmask: offsets must be non-empty")
)
