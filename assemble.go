package stitchery

import "github.com/runnerback/stitchery/model"

// assemble merges per-page results into the final pattern. Document
// metadata passes through verbatim; TotalPages reflects the whole
// document even when only some pages were selected.
func (p *Parser) assemble(results []pageResult) (*model.Pattern, []Warning, error) {
	pattern := model.NewPattern()
	pattern.Info = p.doc.Info
	pattern.TotalPages = len(p.doc.Pages)

	warnings := append([]Warning(nil), p.warnings...)
	for _, res := range results {
		pattern.AddPage(res.page)
		warnings = append(warnings, res.warnings...)
	}

	pattern.Palette = BuildPalette(pattern.Pages)
	pattern.Symbols = MergeSymbols(pattern.Pages)

	return pattern, warnings, nil
}

// BuildPalette merges page color lists into a document palette. Colors
// keep first-seen order across pages and get sequential ids from 1.
func BuildPalette(pages []*model.Page) []model.ColorEntry {
	palette := []model.ColorEntry{}
	seen := make(map[string]bool)

	for _, page := range pages {
		for _, c := range page.Colors {
			if seen[c.Hex] {
				continue
			}
			seen[c.Hex] = true
			palette = append(palette, model.ColorEntry{
				ID:  len(palette) + 1,
				Hex: c.Hex,
				RGB: c.RGB,
			})
		}
	}
	return palette
}

// MergeSymbols groups page symbols by glyph. Glyphs keep first-seen
// order; each entry lists every cell the glyph occupies, in page order.
func MergeSymbols(pages []*model.Page) []model.SymbolEntry {
	entries := []model.SymbolEntry{}
	index := make(map[string]int)

	for _, page := range pages {
		for _, s := range page.Symbols {
			i, found := index[s.Glyph]
			if !found {
				i = len(entries)
				index[s.Glyph] = i
				entries = append(entries, model.SymbolEntry{
					Glyph:     s.Glyph,
					Positions: []model.Position{},
				})
			}
			entries[i].Positions = append(entries[i].Positions, model.Position{
				Row: s.Row,
				Col: s.Col,
			})
		}
	}
	return entries
}
