// Package text models the text content of a pattern page and extracts the
// stitch symbols and legend entries it contains.
package text

import (
	"strings"

	"github.com/runnerback/stitchery/model"
)

// Span is a run of text sharing one font, size and color. Flags carries
// the producer's style bits (bold, italic) unchanged.
type Span struct {
	Text  string     `json:"text"`
	Font  string     `json:"font"`
	Size  float64    `json:"size"`
	Flags int        `json:"flags"`
	Color int        `json:"color"`
	BBox  model.BBox `json:"bbox"`
}

// Line is a sequence of spans sharing a baseline.
type Line struct {
	Spans []Span     `json:"spans"`
	BBox  model.BBox `json:"bbox"`
}

// Block is a paragraph-level group of lines.
type Block struct {
	Lines []Line     `json:"lines"`
	BBox  model.BBox `json:"bbox"`
}

// Text concatenates every span in the block, with no separators between
// spans or lines. Legend keywords split across spans stay findable this
// way.
func (b Block) Text() string {
	var sb strings.Builder
	for _, line := range b.Lines {
		for _, span := range line.Spans {
			sb.WriteString(span.Text)
		}
	}
	return sb.String()
}
