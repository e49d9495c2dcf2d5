// Package stitch converts drawing primitives into stitches on the grid.
package stitch

import (
	"github.com/runnerback/stitchery/colors"
	"github.com/runnerback/stitchery/graphics"
	"github.com/runnerback/stitchery/grid"
	"github.com/runnerback/stitchery/model"
)

// Extract maps the stitch marks among prims onto grid cells. A short line
// marks a cross stitch at its first endpoint; a rectangle marks a full
// stitch at its center. Curves are decoration and produce nothing. Marks
// outside the grid are skipped. A nil mapper yields no stitches.
func Extract(prims []graphics.Primitive, mapper *grid.CellMapper) []model.Stitch {
	if mapper == nil {
		return nil
	}

	var stitches []model.Stitch
	for _, prim := range prims {
		var point model.Point
		var typ model.StitchType

		switch p := prim.(type) {
		case graphics.Line:
			point = p.P1
			typ = model.StitchCross
		case graphics.Rect:
			point = p.BBox.Center()
			typ = model.StitchFull
		default:
			continue
		}

		row, col, ok := mapper.Cell(point)
		if !ok {
			continue
		}

		// An unresolvable fill keeps the stitch, just without a color
		hex, _ := colors.Resolve(prim.FillColor())
		stitches = append(stitches, model.Stitch{
			Row:   row,
			Col:   col,
			Type:  typ,
			Color: hex,
		})
	}
	return stitches
}

// PageColors collects the distinct fill colors among prims, in first-seen
// order. Unfilled and unresolvable primitives contribute nothing.
func PageColors(prims []graphics.Primitive) []model.ColorEntry {
	var entries []model.ColorEntry
	seen := make(map[string]bool)

	for _, prim := range prims {
		hex, ok := colors.Resolve(prim.FillColor())
		if !ok || seen[hex] {
			continue
		}
		seen[hex] = true
		entries = append(entries, model.ColorEntry{
			Hex: hex,
			RGB: colors.HexToRGB(hex),
		})
	}
	return entries
}
