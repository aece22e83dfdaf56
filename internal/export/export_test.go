package export

import (
	"archive/tar"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/hueforge/hueforge/internal/colour"
)

func testPalette(t *testing.T) *colour.Palette {
	t.Helper()
	p, err := colour.NewPaletteFromHex([]string{"#2563eb", "#db2777", "#f5f5f5"})
	if err != nil {
		t.Fatalf("NewPaletteFromHex error: %v", err)
	}
	return p
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "css", want: FormatCSS},
		{input: "SCSS", want: FormatSCSS},
		{input: "json", want: FormatJSON},
		{input: "yaml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderCSS(t *testing.T) {
	data, err := Render(testPalette(t), FormatCSS)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, ":root {") {
		t.Errorf("CSS output does not open a :root block:\n%s", out)
	}
	if !strings.Contains(out, "#2563eb") || !strings.Contains(out, "#db2777") {
		t.Errorf("CSS output missing palette colours:\n%s", out)
	}
	if !strings.Contains(out, "--colour-") {
		t.Errorf("CSS output missing custom property names:\n%s", out)
	}
}

func TestRenderSCSS(t *testing.T) {
	data, err := Render(testPalette(t), FormatSCSS)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "$colour-") {
		t.Errorf("SCSS output does not start with a variable:\n%s", out)
	}
	if strings.Contains(out, ":root") {
		t.Errorf("SCSS output should not contain a :root block:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := Render(testPalette(t), FormatJSON)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	var doc colour.PaletteJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("JSON output does not decode: %v", err)
	}
	if doc.Count != 3 {
		t.Errorf("count = %d, want 3", doc.Count)
	}
}

func TestWriteBundleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.tar.xz")

	if err := WriteBundle(path, testPalette(t), nil); err != nil {
		t.Fatalf("WriteBundle error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer f.Close()

	xzr, err := xz.NewReader(f)
	if err != nil {
		t.Fatalf("xz.NewReader error: %v", err)
	}
	tr := tar.NewReader(xzr)

	entries := make(map[string][]byte)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("tar.Next error: %v", err)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			t.Fatalf("ReadAll error: %v", err)
		}
		entries[header.Name] = data
	}

	for _, format := range Formats() {
		data, ok := entries[format.Filename()]
		if !ok {
			t.Errorf("bundle missing %s", format.Filename())
			continue
		}
		if !strings.Contains(string(data), "#2563eb") {
			t.Errorf("%s does not contain the palette", format.Filename())
		}
	}
	if len(entries) != len(Formats()) {
		t.Errorf("bundle has %d entries, want %d", len(entries), len(Formats()))
	}
}
