package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
	"github.com/hueforge/hueforge/internal/export"
)

var (
	// Export command flags
	exportFormat string
	exportOutput string
	exportBundle string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <hex>...",
	Short: "Export a palette as CSS, SCSS or JSON",
	Long: `Export a palette as a stylesheet or data file.

With --bundle, every format is written into a single xz-compressed tar
archive instead.

Examples:
  hueforge export --format css "#2563eb" "#db2777"
  hueforge export --format scss --output palette.scss "#2563eb" "#db2777"
  hueforge export --bundle palette.tar.xz "#1a1a2e" "#e94560" "#f5f5f5"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "css", "export format (css, scss, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportBundle, "bundle", "", "write all formats into an xz-compressed tar archive at this path")
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, args []string) error {
	palette, err := colour.NewPaletteFromHex(args)
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	if exportBundle != "" {
		logger := newLogger(cmd, "export")
		if err := export.WriteBundle(exportBundle, palette, logger); err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			fmt.Fprintf(os.Stderr, "Bundle written: %s\n", exportBundle)
		}
		return nil
	}

	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	data, err := export.Render(palette, format)
	if err != nil {
		return err
	}

	return writeOutput(exportOutput, string(data))
}
