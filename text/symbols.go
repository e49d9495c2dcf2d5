package text

import (
	"strings"
	"unicode/utf8"

	"github.com/runnerback/stitchery/grid"
	"github.com/runnerback/stitchery/model"
)

// ExtractSymbols finds the single-character spans among blocks and maps
// them onto grid cells. A span qualifies when its text, after trimming
// surrounding whitespace, is exactly one rune; its cell is the one
// containing the span's bounding box center. Spans outside the grid are
// skipped. A nil mapper yields no symbols.
func ExtractSymbols(blocks []Block, mapper *grid.CellMapper) []model.Symbol {
	if mapper == nil {
		return nil
	}

	var symbols []model.Symbol
	for _, block := range blocks {
		for _, line := range block.Lines {
			for _, span := range line.Spans {
				glyph := strings.TrimSpace(span.Text)
				if utf8.RuneCountInString(glyph) != 1 {
					continue
				}
				row, col, ok := mapper.Cell(span.BBox.Center())
				if !ok {
					continue
				}
				symbols = append(symbols, model.Symbol{
					Glyph: glyph,
					Row:   row,
					Col:   col,
					BBox:  span.BBox,
				})
			}
		}
	}
	return symbols
}
