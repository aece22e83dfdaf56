package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
)

// newLogger builds a named hclog logger honouring the global verbose flag.
// Non-verbose runs log nothing.
func newLogger(cmd *cobra.Command, name string) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   name,
			Output: log.Writer(),
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// writeOutput writes command output to a file when path is non-empty,
// otherwise to stdout.
func writeOutput(path, output string) error {
	if path == "" {
		fmt.Print(output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// formatPalette formats a palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatHex formats the palette as hex colour codes.
func formatHex(palette *colour.Palette, showPreview bool) string {
	output := ""
	for _, c := range palette.Colors {
		if showPreview {
			output += colour.Preview(c.RGB, 8) + "  " + c.Hex + "\n"
		} else {
			output += c.Hex + "\n"
		}
	}
	return output
}

// formatRGB formats the palette as RGB values.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	output := ""
	for _, c := range palette.Colors {
		if showPreview {
			output += colour.Preview(c.RGB, 8) + "  " + c.RGB.String() + "\n"
		} else {
			output += c.RGB.String() + "\n"
		}
	}
	return output
}

// renderScore renders an accessibility score as a readable report.
func renderScore(score colour.AccessibilityScore) string {
	output := fmt.Sprintf("Overall: %s (%d/%d checks passed)\n", score.OverallScore, score.PassedChecks, score.TotalChecks)
	if score.ColorBlindnessCompatible {
		output += "Colour-blindness: compatible\n"
	} else {
		output += "Colour-blindness: incompatible\n"
	}

	if len(score.ContrastRatios) > 0 {
		table := NewTable("COLOUR 1", "COLOUR 2", "RATIO", "LEVEL")
		for _, check := range score.ContrastRatios {
			table.AddRow(check.Color1, check.Color2, fmt.Sprintf("%.2f", check.Ratio), string(check.Level))
		}
		output += "\n" + table.Render()
	}

	if len(score.Recommendations) > 0 {
		output += "\nRecommendations:\n"
		for _, rec := range score.Recommendations {
			output += "  - " + rec + "\n"
		}
	}
	return output
}
