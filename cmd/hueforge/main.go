// Hueforge - colour science and accessibility toolkit
//
// Hueforge converts colours between representations, checks WCAG contrast,
// simulates colour-vision deficiencies, scores palettes, extracts dominant
// colours from images and synthesises harmonious palettes.
package main

import (
	"github.com/hueforge/hueforge/internal/cli"
)

func main() {
	cli.Execute()
}
