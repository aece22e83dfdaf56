package cli

import "strings"

// columnGap is the number of spaces between rendered columns.
const columnGap = 2

// Table renders rows of text in aligned columns. Columns size themselves
// to their widest cell unless a limit is set, in which case cell text
// wraps onto continuation lines.
type Table struct {
	headers []string
	rows    [][]string
	limits  map[int]int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		limits:  make(map[int]int),
	}
}

// LimitColumn caps a column's width. Cells longer than the limit wrap at
// word boundaries onto additional lines.
func (t *Table) LimitColumn(index, width int) {
	if index >= 0 && width > 0 {
		t.limits[index] = width
	}
}

// AddRow appends a row. Missing trailing cells render empty; extra cells
// are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render formats the table as a string, one line per header, separator
// and row line.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Wrap limited cells first; widths are computed over wrapped lines.
	wrapped := make([][][]string, len(t.rows))
	for i, row := range t.rows {
		wrapped[i] = make([][]string, len(row))
		for col, cell := range row {
			if limit := t.limits[col]; limit > 0 {
				wrapped[i][col] = wrapText(cell, limit)
			} else {
				wrapped[i][col] = []string{cell}
			}
		}
	}

	widths := make([]int, len(t.headers))
	for col, h := range t.headers {
		widths[col] = len(h)
	}
	for _, row := range wrapped {
		for col, lines := range row {
			for _, line := range lines {
				if len(line) > widths[col] {
					widths[col] = len(line)
				}
			}
		}
	}

	gap := strings.Repeat(" ", columnGap)
	var sb strings.Builder

	writeLine := func(cells []string) {
		parts := make([]string, len(t.headers))
		for col := range t.headers {
			cell := ""
			if col < len(cells) {
				cell = cells[col]
			}
			parts[col] = pad(cell, widths[col])
		}
		sb.WriteString(strings.Join(parts, gap))
		sb.WriteString("\n")
	}

	writeLine(t.headers)

	separators := make([]string, len(t.headers))
	for col, w := range widths {
		separators[col] = strings.Repeat("-", w)
	}
	writeLine(separators)

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for line := 0; line < height; line++ {
			cells := make([]string, len(row))
			for col, lines := range row {
				if line < len(lines) {
					cells[col] = lines[line]
				}
			}
			writeLine(cells)
		}
	}

	return sb.String()
}

// pad right-pads a cell with spaces to the column width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText breaks text into lines no longer than width, preferring word
// boundaries and splitting words only when a single word exceeds the
// width on its own.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range words {
		for len(word) > width {
			flush()
			lines = append(lines, word[:width])
			word = word[width:]
		}

		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			flush()
			current = word
		}
	}
	flush()

	return lines
}
