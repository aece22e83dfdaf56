package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/generate"
)

var (
	// Generate command flags
	generatePrompt  string
	generateCount   int
	generateModel   string
	generateFormat  string
	generateOutput  string
	generatePreview bool
	generateScore   bool
	generateDryRun  bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a colour palette from a text prompt",
	Long: `Generate a candidate colour palette from a text prompt using Google's
Gemini models. The model's output is validated colour by colour; a response
containing any malformed value is rejected.

Requires the GOOGLE_API_KEY environment variable (a .env file in the
working directory is also read).

Examples:
  hueforge generate --prompt "muted autumn forest"
  hueforge generate --prompt "neon arcade" --count 8 --score
  hueforge generate --prompt "ocean sunrise" --dry-run`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generatePrompt, "prompt", "p", "", "palette theme description (required)")
	generateCmd.Flags().IntVarP(&generateCount, "count", "c", 5, "number of colours to generate (1-16)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Gemini model to use (default from HUEFORGE_GENAI_MODEL)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file (default: stdout)")
	generateCmd.Flags().BoolVar(&generatePreview, "preview", false, "show colour previews in terminal")
	generateCmd.Flags().BoolVar(&generateScore, "score", false, "append an accessibility score to the output")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "validate the request without calling the API")

	_ = generateCmd.MarkFlagRequired("prompt")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	model := generateModel
	if model == "" {
		model = cfg.GenAIModel
	}

	opts := generate.Options{
		Prompt: generatePrompt,
		Count:  generateCount,
		Model:  model,
		APIKey: cfg.APIKey,
	}

	if generateDryRun {
		if err := opts.Validate(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Dry run: would request %d colours from %s for prompt %q\n",
			generateCount, model, generatePrompt)
		return nil
	}

	generator := generate.New(newLogger(cmd, "generate"))
	palette, err := generator.Generate(cmd.Context(), opts)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Generated %d colours\n", palette.Len())
	}

	output, err := formatPalette(palette, generateFormat, generatePreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if generateScore {
		output += "\n" + renderScore(colour.Score(palette.Colors))
	}

	return writeOutput(generateOutput, output)
}
