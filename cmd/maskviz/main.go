// Command maskviz is a CLI tool for inspecting spiral attention masks.
//
// Usage:
//
//	maskviz -n 64 -offsets 8,16 -window 4 -band 1        # Build and summarize
//	maskviz -n 16 -offsets 5 -band 2 -render             # ASCII render
//	maskviz -params mask.json                            # Parameters from JSON
//	maskviz -model <model_id>                            # Parameters from HuggingFace config
//	maskviz -local <dir>                                 # Parameters from local model directory
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gomlx/go-huggingface/hub"

	"github.com/ajroetker/spiralmask-gomlx"
)

func main() {
	seqLen := flag.Int("n", 0, "Sequence length")
	window := flag.Int("window", 0, "Causal local window width")
	offsetsFlag := flag.String("offsets", "", "Comma-separated spiral offsets (e.g. 8,16,32)")
	band := flag.Int("band", 0, "Symmetric band width around each spiral link")
	variant := flag.String("variant", spiralmask.VariantSpiral, "Construction variant")
	paramsFile := flag.String("params", "", "JSON file with mask parameters")
	modelID := flag.String("model", "", "HuggingFace model ID to derive parameters from")
	localDir := flag.String("local", "", "Local model directory to derive parameters from")
	render := flag.Bool("render", false, "Print an ASCII render of the mask")
	maxRender := flag.Int("max-render", 128, "Largest sequence length to render")
	listVariants := flag.Bool("list", false, "List supported variants")
	flag.Parse()

	if *listVariants {
		fmt.Println("Supported variants:")
		for _, name := range spiralmask.ListVariants() {
			fmt.Printf("  - %s\n", name)
		}
		return
	}

	params, err := resolveParameters(*seqLen, *window, *offsetsFlag, *band, *paramsFile, *modelID, *localDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	rel, err := spiralmask.NewRelation(*variant, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building mask: %v\n", err)
		os.Exit(1)
	}

	printSummary(params, *variant, rel)

	if *render {
		if params.SequenceLength > *maxRender {
			fmt.Fprintf(os.Stderr, "Error: sequence length %d exceeds -max-render %d\n",
				params.SequenceLength, *maxRender)
			os.Exit(1)
		}
		fmt.Println()
		renderMask(rel)
	}
}

// resolveParameters picks the parameter source: explicit flags, a JSON
// parameters file, or a model config (remote or local).
func resolveParameters(n, window int, offsetsFlag string, band int, paramsFile, modelID, localDir string) (spiralmask.MaskParameters, error) {
	switch {
	case paramsFile != "":
		params, err := spiralmask.ParseParametersFile(paramsFile)
		if err != nil {
			return spiralmask.MaskParameters{}, err
		}
		return *params, nil
	case modelID != "":
		fmt.Printf("Deriving parameters from HuggingFace model: %s\n", modelID)
		return spiralmask.FromPretrained(hub.New(modelID))
	case localDir != "":
		fmt.Printf("Deriving parameters from local directory: %s\n", localDir)
		return spiralmask.FromLocal(localDir)
	case n > 0:
		offsets, err := parseOffsets(offsetsFlag)
		if err != nil {
			return spiralmask.MaskParameters{}, err
		}
		params := spiralmask.MaskParameters{
			SequenceLength: n,
			LocalWindow:    window,
			Offsets:        offsets,
			Band:           band,
		}
		return params, params.Validate()
	default:
		return spiralmask.MaskParameters{}, fmt.Errorf("-n with -offsets, -params, -model, or -local is required")
	}
}

func parseOffsets(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	offsets := make([]int, 0, len(parts))
	for _, part := range parts {
		o, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %v", part, err)
		}
		offsets = append(offsets, o)
	}
	return offsets, nil
}

func printSummary(params spiralmask.MaskParameters, variant string, rel spiralmask.Relation) {
	n := params.SequenceLength

	permitted := 0
	intervals := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rel.Permitted(i, j) {
				permitted++
			}
		}
	}
	if ir, ok := rel.(*spiralmask.IntervalRelation); ok {
		for i := 0; i < n; i++ {
			intervals += len(ir.Row(i))
		}
	}

	fmt.Println()
	fmt.Println("Mask Summary:")
	fmt.Printf("  Variant: %s\n", variant)
	fmt.Printf("  sequence_length: %d\n", params.SequenceLength)
	fmt.Printf("  local_window: %d\n", params.LocalWindow)
	fmt.Printf("  offsets: %v\n", params.Offsets)
	fmt.Printf("  band: %d\n", params.Band)
	fmt.Printf("  Permitted pairs: %d of %d (density %.2f%%)\n",
		permitted, n*n, 100*float64(permitted)/float64(n*n))
	if intervals > 0 {
		fmt.Printf("  Intervals: %d (%.2f per row)\n", intervals, float64(intervals)/float64(n))
	}
}

// renderMask prints the relation with '#' for permitted and '.' for denied,
// one row per query position.
func renderMask(rel spiralmask.Relation) {
	n := rel.SeqLen()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.Reset()
		for j := 0; j < n; j++ {
			if rel.Permitted(i, j) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Println(sb.String())
	}
}
