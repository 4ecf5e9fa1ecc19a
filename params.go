// Package spiralmask builds structured sparse attention masks for
// transformer models in GoMLX.
//
// A mask combines a causal local window, periodic long-range "spiral" links
// at fixed offsets, and a symmetric band of neighbors around each spiral
// link into one boolean relation over (query, key) position pairs. The
// relation can be materialized densely, as compact per-row intervals, or as
// a GoMLX graph node (additive bias or boolean mask) ready to combine with
// attention scores.
package spiralmask

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// MaskParameters describes one spiral mask. All fields are required except
// that a zero LocalWindow or Band is meaningful (window of just the query
// position itself, no band widening).
type MaskParameters struct {
	// SequenceLength is the number of positions n. Must be >= 1.
	SequenceLength int `json:"sequence_length"`

	// LocalWindow is the causal window width w: query i may always attend
	// to [max(0, i-w), i]. Must be >= 0.
	LocalWindow int `json:"local_window"`

	// Offsets are the spiral link distances: query i links to i-o for each
	// offset o. Must be non-empty; each offset must be positive. Offsets at
	// or beyond SequenceLength are legal no-ops (their centers always fall
	// out of range). Duplicates are harmless.
	Offsets []int `json:"offsets"`

	// Band widens every spiral link symmetrically to i-o±1 … i-o±b. Band
	// members are bounds-checked individually and are NOT clamped to the
	// causal side; see Build for the consequences when Band > min(Offsets).
	Band int `json:"band"`
}

// ParseParametersFile loads and validates mask parameters from a JSON file.
func ParseParametersFile(filePath string) (*MaskParameters, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read parameters file %q", filePath)
	}

	params, err := ParseParametersContent(content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse parameters file %q", filePath)
	}
	return params, nil
}

// ParseParametersContent parses and validates mask parameters from JSON bytes.
func ParseParametersContent(content []byte) (*MaskParameters, error) {
	params := &MaskParameters{}
	if err := json.Unmarshal(content, params); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal parameters JSON")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// Validate checks the parameters against their legal ranges. All checks run
// before any construction work; a failing parameter set never produces a
// partial relation. Offsets >= SequenceLength pass validation (they are
// defined as no-ops, not errors).
func (p MaskParameters) Validate() error {
	if p.SequenceLength < 1 {
		return errors.Wrapf(ErrInvalidParameter, "sequence_length must be >= 1, got %d", p.SequenceLength)
	}
	if p.LocalWindow < 0 {
		return errors.Wrapf(ErrInvalidParameter, "local_window must be >= 0, got %d", p.LocalWindow)
	}
	if p.Band < 0 {
		return errors.Wrapf(ErrInvalidParameter, "band must be >= 0, got %d", p.Band)
	}
	if len(p.Offsets) == 0 {
		return errors.WithStack(ErrMissingOffsets)
	}
	for _, o := range p.Offsets {
		if o < 1 {
			return errors.Wrapf(ErrInvalidParameter, "offsets must be positive, got %d", o)
		}
	}
	return nil
}
