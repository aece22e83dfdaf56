package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
)

var (
	// Simulate command flags
	simulateType    string
	simulateFormat  string
	simulatePreview bool
)

// simulateCmd represents the simulate command.
var simulateCmd = &cobra.Command{
	Use:   "simulate <hex>...",
	Short: "Simulate how colours appear with a colour-vision deficiency",
	Long: `Simulate colour-vision deficiencies for one or more colours.

Supported deficiencies: protanopia, deuteranopia, tritanopia, achromatopsia.
Without --type, all four are shown side by side.

Examples:
  hueforge simulate "#e94560" "#2563eb"
  hueforge simulate --type deuteranopia --preview "#e94560"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateType, "type", "t", "", "deficiency type (default: all)")
	simulateCmd.Flags().StringVarP(&simulateFormat, "format", "f", "text", "output format (text, json)")
	simulateCmd.Flags().BoolVar(&simulatePreview, "preview", false, "show colour previews in the terminal")
}

// simulatedColor pairs an input colour with its simulated views.
type simulatedColor struct {
	Original  colour.Color                               `json:"original"`
	Simulated map[colour.ColorBlindnessType]colour.Color `json:"simulated"`
}

// runSimulate executes the simulate command.
func runSimulate(cmd *cobra.Command, args []string) error {
	colors, err := colour.ParseColors(args)
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	types := colour.ColorBlindnessTypes()
	if simulateType != "" {
		t, err := colour.ParseColorBlindnessType(simulateType)
		if err != nil {
			return err
		}
		types = []colour.ColorBlindnessType{t}
	}

	results := make([]simulatedColor, len(colors))
	for i, c := range colors {
		views := make(map[colour.ColorBlindnessType]colour.Color, len(types))
		for _, t := range types {
			views[t] = colour.Simulate(c, t)
		}
		results[i] = simulatedColor{Original: c, Simulated: views}
	}

	switch simulateFormat {
	case "text":
		fmt.Print(renderSimulations(results, types))
	case "json":
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialise simulation: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", simulateFormat)
	}

	return nil
}

// renderSimulations renders a table of original and simulated colours.
func renderSimulations(results []simulatedColor, types []colour.ColorBlindnessType) string {
	headers := []string{"ORIGINAL"}
	for _, t := range types {
		headers = append(headers, string(t))
	}

	table := NewTable(headers...)
	for _, result := range results {
		row := []string{cell(result.Original)}
		for _, t := range types {
			row = append(row, cell(result.Simulated[t]))
		}
		table.AddRow(row...)
	}
	return table.Render()
}

// cell formats a colour for table output, with an optional preview block.
func cell(c colour.Color) string {
	if simulatePreview {
		return colour.Preview(c.RGB, 4) + " " + c.Hex
	}
	return c.Hex
}
