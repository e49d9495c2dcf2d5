package stitchery

import (
	"github.com/runnerback/stitchery/graphics"
	"github.com/runnerback/stitchery/model"
	"github.com/runnerback/stitchery/text"
)

// Document is the decoded content of a chart document: its metadata and
// one entry per page. How the geometry got out of the source file is the
// caller's business; the parser only interprets it.
type Document struct {
	Info  model.Metadata
	Pages []PageContent
}

// PageContent holds the raw content of a single page: its dimensions, the
// vector drawing primitives, and the text blocks.
type PageContent struct {
	Width    float64
	Height   float64
	Drawings []graphics.Primitive
	Text     []text.Block
}
