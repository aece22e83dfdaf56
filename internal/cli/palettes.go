package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hueforge/hueforge/internal/colour"
	"github.com/hueforge/hueforge/internal/config"
	"github.com/hueforge/hueforge/internal/store"
)

var (
	// Palettes save flags
	palettesSaveName string
)

// palettesCmd groups the local palette store subcommands.
var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "Manage saved palettes",
	Long: `Save, list, show and delete palettes in the local store.

Palettes are stored as JSON documents under the data directory
(HUEFORGE_DATA_DIR, default ~/.local/share/hueforge). Each document
carries the palette and its accessibility score at save time.`,
}

// palettesSaveCmd saves a palette.
var palettesSaveCmd = &cobra.Command{
	Use:   "save --name <name> <hex>...",
	Short: "Save a palette to the local store",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPalettesSave,
}

// palettesListCmd lists saved palettes.
var palettesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	Args:  cobra.NoArgs,
	RunE:  runPalettesList,
}

// palettesShowCmd shows a saved palette.
var palettesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalettesShow,
}

// palettesDeleteCmd deletes a saved palette.
var palettesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runPalettesDelete,
}

func init() {
	palettesSaveCmd.Flags().StringVarP(&palettesSaveName, "name", "n", "", "palette name (required)")
	_ = palettesSaveCmd.MarkFlagRequired("name")

	palettesCmd.AddCommand(palettesSaveCmd)
	palettesCmd.AddCommand(palettesListCmd)
	palettesCmd.AddCommand(palettesShowCmd)
	palettesCmd.AddCommand(palettesDeleteCmd)
}

// openStore builds the store from configuration.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return store.New(cfg.DataDir, newLogger(cmd, "store")), nil
}

// runPalettesSave executes the palettes save command.
func runPalettesSave(cmd *cobra.Command, args []string) error {
	colors, err := colour.ParseColors(args)
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	doc, err := s.Save(palettesSaveName, colors)
	if err != nil {
		return err
	}

	fmt.Printf("Saved palette %q (%d colours) as %s\n", doc.Name, len(doc.Colors), doc.ID)
	return nil
}

// runPalettesList executes the palettes list command.
func runPalettesList(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	docs, err := s.List()
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Println("No saved palettes.")
		return nil
	}

	table := NewTable("ID", "NAME", "COLOURS", "SCORE", "SAVED")
	// Long names wrap instead of pushing the remaining columns off screen.
	table.LimitColumn(1, 24)
	for _, doc := range docs {
		table.AddRow(
			doc.ID,
			doc.Name,
			fmt.Sprintf("%d", len(doc.Colors)),
			string(doc.Score.OverallScore),
			doc.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Print(table.Render())
	return nil
}

// runPalettesShow executes the palettes show command.
func runPalettesShow(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	doc, err := s.Load(args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialise palette: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// runPalettesDelete executes the palettes delete command.
func runPalettesDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	if err := s.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted palette %s\n", args[0])
	return nil
}
