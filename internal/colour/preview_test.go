package colour

import (
	"strings"
	"testing"
)

func TestPreviewWidth(t *testing.T) {
	got := Preview(RGB{R: 255}, 6)

	if !strings.HasPrefix(got, "\033[48;2;255;0;0m") {
		t.Errorf("Preview missing background escape: %q", got)
	}
	if !strings.Contains(got, strings.Repeat(" ", 6)) {
		t.Errorf("Preview block is not 6 characters wide: %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("Preview does not reset: %q", got)
	}
}

func TestPreviewDefaultWidth(t *testing.T) {
	got := Preview(RGB{G: 128}, 0)
	if !strings.Contains(got, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("Preview with width 0 should fall back to %d columns: %q", defaultWidth, got)
	}
}

func TestPreviewWithTextForegroundChoice(t *testing.T) {
	// Light backgrounds take black text, dark backgrounds white.
	onWhite := PreviewWithText(RGB{R: 255, G: 255, B: 255}, "hi", 4)
	if !strings.Contains(onWhite, "\033[38;2;0;0;0m") {
		t.Errorf("text on white should be black: %q", onWhite)
	}

	onBlack := PreviewWithText(RGB{}, "hi", 4)
	if !strings.Contains(onBlack, "\033[38;2;255;255;255m") {
		t.Errorf("text on black should be white: %q", onBlack)
	}
}

func TestPreviewWithTextWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "padded", text: "ab", width: 5, want: "ab   "},
		{name: "exact", text: "abcde", width: 5, want: "abcde"},
		{name: "truncated", text: "abcdefgh", width: 5, want: "abcde"},
		{name: "multibyte padded", text: "héllo", width: 7, want: "héllo  "},
		{name: "multibyte truncated", text: "héllo wörld", width: 5, want: "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviewWithText(RGB{R: 30, G: 30, B: 30}, tt.text, tt.width)
			display := strings.TrimSuffix(got, ansiReset)
			if !strings.HasSuffix(display, tt.want) {
				t.Errorf("PreviewWithText(%q, %d) renders %q, want trailing %q", tt.text, tt.width, got, tt.want)
			}
			if n := len([]rune(tt.want)); n != tt.width {
				t.Fatalf("test case %q is inconsistent: want is %d runes, width %d", tt.name, n, tt.width)
			}
		})
	}
}
