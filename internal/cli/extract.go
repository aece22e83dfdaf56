package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
	"github.com/hueforge/hueforge/internal/image"
)

var (
	// Extract command flags
	extractColours   int
	extractAlgorithm string
	extractFormat    string
	extractOutput    string
	extractPreview   bool
	extractHarmonise bool
	extractScore     bool
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image.

The extract command analyses an image and returns its dominant colours.
The input can be a local file, a directory (a random image is picked) or
an HTTP(S) URL.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 8 colours (default) from an image
  hueforge extract wallpaper.jpg

  # Extract 5 colours with terminal previews
  hueforge extract --preview --colours 5 wallpaper.png

  # Extract, synthesise a harmonious palette and score it
  hueforge extract --harmonise --score wallpaper.jpg

  # Use k-means clustering instead of the dominant-colour histogram
  hueforge extract --algorithm kmeans wallpaper.jpg

  # Extract from a URL and output JSON
  hueforge extract --format json https://example.com/art.png`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 8, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", "dominant", "extraction algorithm (dominant, kmeans)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews in terminal")
	extractCmd.Flags().BoolVar(&extractHarmonise, "harmonise", false, "synthesise a harmonious palette from the dominant colours")
	extractCmd.Flags().BoolVar(&extractScore, "score", false, "append an accessibility score to the output")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	config := colour.ExtractorConfig{
		Algorithm:  colour.Algorithm(extractAlgorithm),
		ColorCount: extractColours,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Directories resolve to a random contained image.
	resolved, err := image.ResolveImagePath(imagePath)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Loading image: %s\n", resolved)
	}

	loader := image.NewSmartLoader()
	img, err := loader.Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	if verbose {
		bounds := img.Bounds()
		fmt.Fprintf(os.Stderr, "Image loaded: %dx%d\n", bounds.Dx(), bounds.Dy())
		fmt.Fprintf(os.Stderr, "Extracting %d colours using %s algorithm...\n", extractColours, extractAlgorithm)
	}

	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	palette, err := extractor.Extract(img, extractColours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Successfully extracted %d colours\n", palette.Len())
	}

	if extractHarmonise {
		if verbose {
			fmt.Fprintf(os.Stderr, "Synthesising harmonious palette...\n")
		}
		palette = colour.NewPalette(colour.Harmonise(palette.Colors))
	}

	output, err := formatPalette(palette, extractFormat, extractPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if extractScore {
		output += "\n" + renderScore(colour.Score(palette.Colors))
	}

	return writeOutput(extractOutput, output)
}
