package colour

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPaletteFromHex(t *testing.T) {
	p, err := NewPaletteFromHex([]string{"#ff0000", "#00ff00", "#0000ff"})
	if err != nil {
		t.Fatalf("NewPaletteFromHex error: %v", err)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}

	hexes := p.ToHex()
	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	for i := range want {
		if hexes[i] != want[i] {
			t.Errorf("ToHex()[%d] = %s, want %s", i, hexes[i], want[i])
		}
	}
}

func TestNewPaletteFromHexInvalid(t *testing.T) {
	if _, err := NewPaletteFromHex([]string{"#ff0000", "bogus"}); err == nil {
		t.Error("expected error for malformed hex entry")
	}
}

func TestPaletteGet(t *testing.T) {
	p, err := NewPaletteFromHex([]string{"#112233", "#445566"})
	if err != nil {
		t.Fatalf("NewPaletteFromHex error: %v", err)
	}

	c, err := p.Get(1)
	if err != nil {
		t.Fatalf("Get(1) error: %v", err)
	}
	if c.Hex != "#445566" {
		t.Errorf("Get(1).Hex = %s, want #445566", c.Hex)
	}

	if _, err := p.Get(-1); err == nil {
		t.Error("expected error for negative index")
	}
	if _, err := p.Get(2); err == nil {
		t.Error("expected error for index past the end")
	}
}

func TestPaletteToJSON(t *testing.T) {
	p, err := NewPaletteFromHex([]string{"#2563eb", "#db2777"})
	if err != nil {
		t.Fatalf("NewPaletteFromHex error: %v", err)
	}

	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}

	var doc PaletteJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if doc.Count != 2 {
		t.Errorf("count = %d, want 2", doc.Count)
	}
	if len(doc.Colors) != 2 || doc.Colors[0].Hex != "#2563eb" {
		t.Errorf("colors = %+v, want the original order preserved", doc.Colors)
	}
}

func TestPaletteString(t *testing.T) {
	empty := NewPalette(nil)
	if empty.String() != "Empty palette" {
		t.Errorf("empty palette String() = %q", empty.String())
	}

	p, err := NewPaletteFromHex([]string{"#ff0000"})
	if err != nil {
		t.Fatalf("NewPaletteFromHex error: %v", err)
	}
	s := p.String()
	if !strings.Contains(s, "#ff0000") || !strings.Contains(s, "rgb(255, 0, 0)") {
		t.Errorf("String() = %q, want hex and rgb forms", s)
	}
}

func TestPaletteAll(t *testing.T) {
	p, err := NewPaletteFromHex([]string{"#111111", "#222222", "#333333"})
	if err != nil {
		t.Fatalf("NewPaletteFromHex error: %v", err)
	}

	var visited []string
	for _, c := range p.All() {
		visited = append(visited, c.Hex)
	}
	if len(visited) != 3 || visited[2] != "#333333" {
		t.Errorf("iterator visited %v", visited)
	}

	// Early termination.
	count := 0
	for range p.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("early break visited %d colours, want 2", count)
	}
}
