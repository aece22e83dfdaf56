package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
)

var (
	// Harmonise command flags
	harmoniseFormat  string
	harmoniseOutput  string
	harmonisePreview bool
	harmoniseScore   bool
)

// harmoniseCmd represents the harmonise command.
var harmoniseCmd = &cobra.Command{
	Use:   "harmonise <hex>...",
	Short: "Synthesise a harmonious palette from seed colours",
	Long: `Synthesise a harmonious palette from up to three seed colours.

For each seed the synthesiser emits the seed itself, its complement (180
degrees opposite on the hue wheel) and two analogous variants (30 degrees
either side at reduced saturation). The palette is capped at five colours,
so later seeds contribute only when earlier ones leave room.

Examples:
  hueforge harmonise "#e94560"
  hueforge harmonise --score "#2563eb" "#db2777"`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runHarmonise,
}

func init() {
	harmoniseCmd.Flags().StringVarP(&harmoniseFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	harmoniseCmd.Flags().StringVarP(&harmoniseOutput, "output", "o", "", "output file (default: stdout)")
	harmoniseCmd.Flags().BoolVar(&harmonisePreview, "preview", false, "show colour previews in terminal")
	harmoniseCmd.Flags().BoolVar(&harmoniseScore, "score", false, "append an accessibility score to the output")
}

// runHarmonise executes the harmonise command.
func runHarmonise(cmd *cobra.Command, args []string) error {
	seeds, err := colour.ParseColors(args)
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	palette := colour.NewPalette(colour.Harmonise(seeds))

	output, err := formatPalette(palette, harmoniseFormat, harmonisePreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if harmoniseScore {
		output += "\n" + renderScore(colour.Score(palette.Colors))
	}

	return writeOutput(harmoniseOutput, output)
}
