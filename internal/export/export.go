// Package export renders palettes as stylesheet and data files.
package export

import (
	"fmt"
	"strings"

	"github.com/hueforge/hueforge/internal/colour"
)

// Format identifies an export rendering.
type Format string

const (
	FormatCSS  Format = "css"
	FormatSCSS Format = "scss"
	FormatJSON Format = "json"
)

// Formats returns all supported formats in render order.
func Formats() []Format {
	return []Format{FormatCSS, FormatSCSS, FormatJSON}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, valid := range Formats() {
		if f == valid {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format: %q (supported: css, scss, json)", s)
}

// Filename returns the conventional file name for a format.
func (f Format) Filename() string {
	return "palette." + string(f)
}

// Render serialises the palette in the given format.
func Render(p *colour.Palette, format Format) ([]byte, error) {
	switch format {
	case FormatCSS:
		return renderCSS(p), nil
	case FormatSCSS:
		return renderSCSS(p), nil
	case FormatJSON:
		data, err := p.ToJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to render JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}

// renderCSS emits custom properties on :root, one per colour.
func renderCSS(p *colour.Palette) []byte {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for i, c := range p.Colors {
		sb.WriteString(fmt.Sprintf("  --%s: %s; /* %s */\n", variableName(c, i), c.Hex, c.Name))
	}
	sb.WriteString("}\n")
	return []byte(sb.String())
}

// renderSCSS emits SCSS variables, one per colour.
func renderSCSS(p *colour.Palette) []byte {
	var sb strings.Builder
	for i, c := range p.Colors {
		sb.WriteString(fmt.Sprintf("$%s: %s; // %s\n", variableName(c, i), c.Hex, c.Name))
	}
	return []byte(sb.String())
}

// variableName builds a stable identifier from the colour's category and
// position. Positions are 1-based so the names read naturally.
func variableName(c colour.Color, index int) string {
	return fmt.Sprintf("colour-%s-%d", c.Category, index+1)
}
