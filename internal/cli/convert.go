package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
)

var (
	// Convert command flags
	convertFormat  string
	convertPreview bool
)

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert a colour between hex, RGB and HSL",
	Long: `Convert a colour value and print all of its representations.

Accepted input forms:
  #rrggbb            hex (the # is optional)
  rgb(r, g, b)       8-bit channels
  hsl(h, s%, l%)     hue in degrees, saturation/lightness in percent

Examples:
  hueforge convert "#2563eb"
  hueforge convert "rgb(37, 99, 235)"
  hueforge convert "hsl(221, 83%, 53%)"`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "text", "output format (text, json)")
	convertCmd.Flags().BoolVar(&convertPreview, "preview", false, "show a colour preview in the terminal")
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	c, err := parseColourValue(args[0])
	if err != nil {
		return err
	}

	switch convertFormat {
	case "text":
		if convertPreview {
			fmt.Println(colour.PreviewWithText(c.RGB, " "+c.Hex+" ", 12))
		}
		fmt.Printf("Hex:      %s\n", c.Hex)
		fmt.Printf("RGB:      %s\n", c.RGB.String())
		fmt.Printf("HSL:      %s\n", c.HSL.String())
		fmt.Printf("Name:     %s\n", c.Name)
		fmt.Printf("Category: %s\n", c.Category)
		fmt.Printf("WCAG:     %s (vs white %.2f, vs black %.2f)\n",
			c.Accessibility.WCAGLevel, c.Accessibility.ContrastWithWhite, c.Accessibility.ContrastWithBlack)
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialise colour: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", convertFormat)
	}

	return nil
}

// parseColourValue accepts hex, rgb(...) or hsl(...) input.
func parseColourValue(value string) (colour.Color, error) {
	trimmed := strings.TrimSpace(value)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		var r, g, b int
		body := trimmed[4 : len(trimmed)-1]
		if _, err := fmt.Sscanf(strings.ReplaceAll(body, " ", ""), "%d,%d,%d", &r, &g, &b); err != nil {
			return colour.Color{}, fmt.Errorf("invalid rgb value %q: %w", value, err)
		}
		hex, err := colour.RGBToHex(r, g, b)
		if err != nil {
			return colour.Color{}, err
		}
		return colour.NewColorFromHex(hex)

	case strings.HasPrefix(lower, "hsl(") && strings.HasSuffix(lower, ")"):
		var h, s, l int
		body := trimmed[4 : len(trimmed)-1]
		if _, err := fmt.Sscanf(strings.ReplaceAll(body, " ", ""), "%d,%d%%,%d%%", &h, &s, &l); err != nil {
			return colour.Color{}, fmt.Errorf("invalid hsl value %q: %w", value, err)
		}
		return colour.NewColorFromHSL(colour.HSL{H: h, S: s, L: l})

	default:
		return colour.NewColorFromHex(trimmed)
	}
}
