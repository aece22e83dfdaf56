package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colour previews.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured preview block for a colour.
// Width specifies how many characters wide the block should be.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a colour preview with a text overlay. The text
// colour is chosen by luminance so it stays readable on the block.
func PreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var fg RGB
	if Luminance(c) > 0.5 {
		fg = black
	} else {
		fg = white
	}

	// Size by runes so multi-byte text keeps the block width.
	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:width]
	}
	display := string(runes)
	if len(runes) < width {
		display += strings.Repeat(" ", width-len(runes))
	}

	bgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)
	return bgSeq + fgSeq + display + ansiReset
}
