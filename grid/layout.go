// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// RowSeparator joins rows in the text layout.
const RowSeparator = "/"

// Format renders g as rows joined by RowSeparator. Each cell takes two
// characters: its glyph followed by the owner digit. Wall and Floor repeat
// their glyph instead of writing an owner ("##", "  ").
// Complexity: O(n²).
func Format(g Grid) string {
	n := g.Size()
	rows := make([]string, n)
	var sb strings.Builder
	for y := 0; y < n; y++ {
		sb.Reset()
		for x := 0; x < n; x++ {
			c := g.Get(x, y)
			glyph := c.State.Glyph()
			sb.WriteRune(glyph)
			if c.State == Wall || c.State == Floor {
				sb.WriteRune(glyph)
				continue
			}
			sb.WriteByte(byte('0' + c.Owner%10))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, RowSeparator)
}

// Parse builds a Board from the row layout produced by Format.
// A non-digit owner character decodes as owner 0.
// Complexity: O(n²).
func Parse(layout string) (*Board, error) {
	if layout == "" {
		return nil, ErrEmptyLayout
	}
	rows := strings.Split(layout, RowSeparator)
	n := len(rows)
	b := NewBoard(n)
	for y, row := range rows {
		cells := []rune(row)
		if len(cells)%2 != 0 {
			return nil, fmt.Errorf("row %d: %w", y, ErrMalformedRow)
		}
		if len(cells)/2 != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(cells)/2, n, ErrNonSquare)
		}
		for x := 0; x < n; x++ {
			st := ParseGlyph(cells[2*x])
			owner := 0
			if d := cells[2*x+1]; d >= '0' && d <= '9' {
				owner = int(d - '0')
			}
			b.Set(x, y, st, owner)
		}
	}
	return b, nil
}
