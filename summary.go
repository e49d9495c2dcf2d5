package stitchery

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/runnerback/stitchery/graphics"
	"github.com/runnerback/stitchery/model"
)

// Summary-mode thresholds. The quick estimate uses a much tighter skew
// tolerance than full detection and requires strictly more lines per
// orientation than the minimum.
const (
	summaryTolerance = 0.1
	summaryMinLines  = 5 // strictly more than this per orientation
)

// DocumentSummary is a quick structural overview of a document, produced
// without running full pattern inference.
type DocumentSummary struct {
	TotalPages int            `json:"total_pages"`
	Info       model.Metadata `json:"metadata"`
	Pages      []PageSummary  `json:"pages"`
}

// PageSummary describes one page's content at a glance.
type PageSummary struct {
	Number    int                 `json:"page_number"`
	Width     float64             `json:"width"`
	Height    float64             `json:"height"`
	Graphics  graphics.Statistics `json:"graphics"`
	TextSpans int                 `json:"text_spans"`
	Estimate  GridEstimate        `json:"grid_info"`
}

// GridEstimate is a rough grid reading. Cell sizes are averages over the
// whole line span, not the dominant spacing full detection reports.
type GridEstimate struct {
	Detected   bool    `json:"detected"`
	Rows       int     `json:"rows"`
	Columns    int     `json:"columns"`
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`
}

// Summary scans the selected pages and reports what they contain without
// building a pattern. It is much cheaper than Pattern on symbol-heavy
// documents and useful for deciding whether a document is a chart at all.
func (p *Parser) Summary() (*DocumentSummary, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.doc.Pages) == 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	indices, err := p.resolvePages()
	if err != nil {
		return nil, err
	}

	summary := &DocumentSummary{
		TotalPages: len(p.doc.Pages),
		Info:       p.doc.Info,
		Pages:      make([]PageSummary, 0, len(indices)),
	}

	classifier := &graphics.Classifier{
		Tolerance:     p.options.tolerance,
		MinLineLength: p.options.minLineLength,
	}

	for _, index := range indices {
		content := p.doc.Pages[index]
		summary.Pages = append(summary.Pages, PageSummary{
			Number:    index + 1,
			Width:     content.Width,
			Height:    content.Height,
			Graphics:  classifier.Stats(content.Drawings),
			TextSpans: countSpans(content),
			Estimate:  estimateGrid(content.Drawings),
		})
	}

	return summary, nil
}

// countSpans counts the spans with non-blank text on a page.
func countSpans(content PageContent) int {
	n := 0
	for _, block := range content.Text {
		for _, line := range block.Lines {
			for _, span := range line.Spans {
				if strings.TrimSpace(span.Text) != "" {
					n++
				}
			}
		}
	}
	return n
}

// estimateGrid takes a fast single-pass reading of the page's lattice.
// Unlike full detection it applies no length filter and averages the
// spacing instead of finding the dominant gap.
func estimateGrid(prims []graphics.Primitive) GridEstimate {
	var ys, xs []float64

	for _, prim := range prims {
		line, isLine := prim.(graphics.Line)
		if !isLine {
			continue
		}
		switch {
		case math.Abs(line.P1.Y-line.P2.Y) < summaryTolerance:
			ys = append(ys, line.P1.Y)
		case math.Abs(line.P1.X-line.P2.X) < summaryTolerance:
			xs = append(xs, line.P1.X)
		}
	}

	if len(ys) <= summaryMinLines || len(xs) <= summaryMinLines {
		return GridEstimate{}
	}

	sort.Float64s(ys)
	sort.Float64s(xs)

	return GridEstimate{
		Detected:   true,
		Rows:       len(ys) - 1,
		Columns:    len(xs) - 1,
		CellWidth:  (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1),
		CellHeight: (ys[len(ys)-1] - ys[0]) / float64(len(ys)-1),
	}
}
