package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/runnerback/stitchery/model"
)

// threadBrands are matched against uppercased block text.
var threadBrands = []string{"DMC", "ANCHOR", "MADEIRA"}

// colorTerms are matched against lowercased block text.
var colorTerms = []string{"color", "colour", "颜色"}

// ClassifyLegend scans text blocks for legend material. A block
// mentioning a thread brand classifies as thread info; failing that, a
// block mentioning color terminology classifies as color info. Matching
// is case-insensitive over the block's concatenated text, so keywords
// split across spans still match. Blocks matching neither are dropped.
func ClassifyLegend(blocks []Block) []model.LegendEntry {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var legend []model.LegendEntry
	for _, block := range blocks {
		text := block.Text()
		switch {
		case containsAny(upper.String(text), threadBrands):
			legend = append(legend, model.LegendEntry{
				Type: model.LegendThreadInfo,
				Text: strings.TrimSpace(text),
			})
		case containsAny(lower.String(text), colorTerms):
			legend = append(legend, model.LegendEntry{
				Type: model.LegendColorInfo,
				Text: strings.TrimSpace(text),
			})
		}
	}
	return legend
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
