package spiralmask

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gomlx/go-huggingface/hub"
	"github.com/pkg/errors"
)

// ModelConfig carries the subset of a Hugging Face config.json relevant to
// mask construction. Extra keys are available in Raw for custom parsing.
type ModelConfig struct {
	// Path to the config file (not from JSON).
	ConfigFile string `json:"-"`

	ModelType string `json:"model_type"`

	// Sequence geometry.
	MaxPositionEmbeddings int `json:"max_position_embeddings"`
	SlidingWindow         int `json:"sliding_window,omitempty"`

	// Spiral mask configuration, when the model ships one.
	SpiralOffsets     []int `json:"spiral_offsets,omitempty"`
	SpiralBand        int   `json:"spiral_band,omitempty"`
	SpiralLocalWindow int   `json:"spiral_local_window,omitempty"`

	// The raw JSON for keys not modeled above.
	Raw map[string]interface{} `json:"-"`
}

// ParseModelConfigFile loads and parses a model config.json file.
func ParseModelConfigFile(filePath string) (*ModelConfig, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %q", filePath)
	}

	config, err := ParseModelConfigContent(content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %q", filePath)
	}
	config.ConfigFile = filePath

	return config, nil
}

// ParseModelConfigContent parses model config.json content from bytes.
func ParseModelConfigContent(content []byte) (*ModelConfig, error) {
	config := &ModelConfig{}

	// First unmarshal into the struct for the modeled fields.
	if err := json.Unmarshal(content, config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config JSON")
	}

	// Also unmarshal into Raw for everything else.
	if err := json.Unmarshal(content, &config.Raw); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config JSON to raw map")
	}

	return config, nil
}

// GetInt retrieves an integer field from Raw config.
func (c *ModelConfig) GetInt(key string) (int, bool) {
	if v, ok := c.Raw[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n), true
		case int:
			return n, true
		}
	}
	return 0, false
}

// GetIntSlice retrieves an integer slice from Raw config.
func (c *ModelConfig) GetIntSlice(key string) ([]int, bool) {
	if v, ok := c.Raw[key]; ok {
		if arr, ok := v.([]interface{}); ok {
			result := make([]int, 0, len(arr))
			for _, item := range arr {
				if f, ok := item.(float64); ok {
					result = append(result, int(f))
				}
			}
			return result, true
		}
	}
	return nil, false
}

// MaskParameters derives spiral mask parameters from the model config:
// sequence length from max_position_embeddings, local window from
// spiral_local_window falling back to sliding_window, spiral offsets and
// band from their spiral_* keys. The result is validated, so a config
// without spiral_offsets fails with ErrMissingOffsets.
func (c *ModelConfig) MaskParameters() (MaskParameters, error) {
	params := MaskParameters{
		SequenceLength: c.MaxPositionEmbeddings,
		LocalWindow:    c.SpiralLocalWindow,
		Offsets:        c.SpiralOffsets,
		Band:           c.SpiralBand,
	}
	// An explicit spiral_local_window wins even when zero; the fallback
	// applies only when the key is absent from the config.
	if _, explicit := c.Raw["spiral_local_window"]; !explicit && c.SlidingWindow > 0 {
		// Sliding-window models attend to the window size minus the query
		// position itself.
		params.LocalWindow = c.SlidingWindow - 1
	}
	if err := params.Validate(); err != nil {
		return MaskParameters{}, errors.Wrapf(err, "model config %q does not describe a valid spiral mask", c.ModelType)
	}
	return params, nil
}

// FromPretrained downloads a model's config.json from a Hugging Face
// repository and derives mask parameters from it.
func FromPretrained(repo *hub.Repo) (MaskParameters, error) {
	if err := repo.DownloadInfo(false); err != nil {
		return MaskParameters{}, errors.Wrap(err, "failed to download repo info")
	}

	configPath, err := repo.DownloadFile("config.json")
	if err != nil {
		return MaskParameters{}, errors.Wrap(err, "failed to download config.json")
	}

	config, err := ParseModelConfigFile(configPath)
	if err != nil {
		return MaskParameters{}, err
	}
	return config.MaskParameters()
}

// FromLocal derives mask parameters from a local directory containing a
// config.json (e.g. a cached Hugging Face model directory).
func FromLocal(dir string) (MaskParameters, error) {
	config, err := ParseModelConfigFile(filepath.Join(dir, "config.json"))
	if err != nil {
		return MaskParameters{}, err
	}
	return config.MaskParameters()
}
