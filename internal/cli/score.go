package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
)

var (
	// Score command flags
	scoreFormat string
	scoreOutput string
)

// scoreCmd represents the score command.
var scoreCmd = &cobra.Command{
	Use:   "score <hex>...",
	Short: "Score a colour set for accessibility",
	Long: `Score a set of colours against the WCAG contrast thresholds.

Every unordered pair of colours is checked, plus each colour against pure
white and pure black. The overall grade is the worst individual result.
Colour-blindness compatibility is checked by simulating the four common
deficiencies and looking for pairs that collapse together.

Examples:
  # Score two colours
  hueforge score "#2563eb" "#ffffff"

  # Score a palette and emit JSON
  hueforge score --format json "#1a1a2e" "#e94560" "#f5f5f5"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", "text", "output format (text, json)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "output", "o", "", "output file (default: stdout)")
}

// runScore executes the score command.
func runScore(cmd *cobra.Command, args []string) error {
	colors, err := colour.ParseColors(args)
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	score := colour.Score(colors)

	var output string
	switch scoreFormat {
	case "text":
		output = renderScore(score)
	case "json":
		data, err := json.MarshalIndent(score, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialise score: %w", err)
		}
		output = string(data) + "\n"
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", scoreFormat)
	}

	return writeOutput(scoreOutput, output)
}
