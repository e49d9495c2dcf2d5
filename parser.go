package stitchery

import (
	"fmt"
	"sort"
	"sync"

	"github.com/runnerback/stitchery/graphics"
	"github.com/runnerback/stitchery/grid"
	"github.com/runnerback/stitchery/model"
	"github.com/runnerback/stitchery/stitch"
	"github.com/runnerback/stitchery/text"
)

// pageResult holds the data inferred from a single page.
type pageResult struct {
	page     *model.Page
	warnings []Warning
}

// Parser provides a fluent interface for inferring patterns from document
// geometry. Each configuration method returns a new Parser instance,
// making it safe for concurrent use and allowing method chaining.
type Parser struct {
	// Source
	doc Document

	// Configuration
	options parseOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during configuration
	warnings []Warning
}

// clone creates a shallow copy of the Parser with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Parser) clone() *Parser {
	return &Parser{
		doc:      p.doc,
		options:  p.options.clone(),
		err:      p.err,
		warnings: append([]Warning(nil), p.warnings...),
	}
}

// fail records the first configuration error; later ones are ignored.
func (p *Parser) fail(err error) *Parser {
	if p.err == nil {
		p.err = err
	}
	return p
}

// ============================================================================
// Configuration Methods (return new Parser instance)
// ============================================================================

// Pages specifies which pages to parse (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	pattern, _, err := stitchery.From(doc).Pages(1, 3, 5).Pattern()
func (p *Parser) Pages(pages ...int) *Parser {
	newP := p.clone()
	newP.options.pages = append(newP.options.pages, pages...)
	return newP
}

// PageRange specifies a range of pages to parse (1-indexed, inclusive).
//
// Example:
//
//	pattern, _, err := stitchery.From(doc).PageRange(2, 4).Pattern()
func (p *Parser) PageRange(start, end int) *Parser {
	newP := p.clone()
	for i := start; i <= end; i++ {
		newP.options.pages = append(newP.options.pages, i)
	}
	return newP
}

// Concurrency sets how many pages are processed at once. The default is 1;
// pages appear in the pattern in document order regardless of the setting.
//
// Example:
//
//	pattern, _, err := stitchery.From(doc).Concurrency(4).Pattern()
func (p *Parser) Concurrency(n int) *Parser {
	newP := p.clone()
	if n < 1 {
		return newP.fail(fmt.Errorf("concurrency must be at least 1, got %d", n))
	}
	newP.options.concurrency = n
	return newP
}

// Tolerance sets the maximum coordinate difference, in points, for a line
// to count as axis-parallel. The default is 1.
func (p *Parser) Tolerance(t float64) *Parser {
	newP := p.clone()
	if t <= 0 {
		return newP.fail(fmt.Errorf("tolerance must be positive, got %v", t))
	}
	newP.options.tolerance = t
	return newP
}

// MinLineLength sets the length, in points, below which lines are treated
// as stitch marks rather than grid rules. The default is 50.
func (p *Parser) MinLineLength(length float64) *Parser {
	newP := p.clone()
	if length < 0 {
		return newP.fail(fmt.Errorf("minimum line length must not be negative, got %v", length))
	}
	newP.options.minLineLength = length
	return newP
}

// MinGridLines sets how many ruled lines per orientation a page needs for
// grid detection. The default is 5.
func (p *Parser) MinGridLines(n int) *Parser {
	newP := p.clone()
	if n < 2 {
		return newP.fail(fmt.Errorf("grid detection needs at least 2 lines, got %d", n))
	}
	newP.options.minGridLines = n
	return newP
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the document.
func (p *Parser) PageCount() int {
	return len(p.doc.Pages)
}

// Pattern runs the inference pipeline and returns the assembled pattern.
// Warnings report pages that could not be fully interpreted; they are
// ordered by page number.
func (p *Parser) Pattern() (*model.Pattern, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if len(p.doc.Pages) == 0 {
		return nil, nil, fmt.Errorf("document has no pages")
	}

	indices, err := p.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	return p.assemble(p.processPages(indices))
}

// ============================================================================
// Internal Pipeline
// ============================================================================

// resolvePages converts the configured 1-indexed page selection into
// sorted, deduplicated 0-indexed positions. No selection means all pages.
func (p *Parser) resolvePages() ([]int, error) {
	pageCount := len(p.doc.Pages)

	if len(p.options.pages) == 0 {
		indices := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			indices[i] = i
		}
		return indices, nil
	}

	seen := make(map[int]bool)
	var indices []int
	for _, n := range p.options.pages {
		if n < 1 || n > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", n, pageCount)
		}
		zeroIndexed := n - 1
		if !seen[zeroIndexed] {
			seen[zeroIndexed] = true
			indices = append(indices, zeroIndexed)
		}
	}

	sort.Ints(indices)
	return indices, nil
}

// processPages runs page inference, in parallel when configured. Each
// result lands in its selection-order slot regardless of which goroutine
// finishes first.
func (p *Parser) processPages(indices []int) []pageResult {
	results := make([]pageResult, len(indices))

	workers := p.options.concurrency
	if workers > len(indices) {
		workers = len(indices)
	}
	if workers <= 1 {
		for slot, pageIndex := range indices {
			results[slot] = p.processPage(pageIndex)
		}
		return results
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for slot, pageIndex := range indices {
		wg.Add(1)
		sem <- struct{}{}
		go func(slot, pageIndex int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[slot] = p.processPage(pageIndex)
		}(slot, pageIndex)
	}
	wg.Wait()

	return results
}

// processPage infers everything a single page contributes to the pattern.
// Failures downgrade to warnings; a page is never lost outright.
func (p *Parser) processPage(index int) pageResult {
	content := p.doc.Pages[index]
	number := index + 1

	page := model.NewPage(content.Width, content.Height)
	page.Number = number

	var warnings []Warning

	classifier := &graphics.Classifier{
		Tolerance:     p.options.tolerance,
		MinLineLength: p.options.minLineLength,
	}
	detector := &grid.Detector{
		MinGridLines:  p.options.minGridLines,
		MinLineLength: p.options.minLineLength,
	}

	cls := classifier.Classify(content.Drawings)
	g, stats := detector.Detect(cls.Horizontals, cls.Verticals)

	switch {
	case g.Detected:
		page.Grid = &g

		mapper, err := grid.NewCellMapper(g)
		if err != nil {
			warnings = append(warnings, Warning{
				Code:    WarnDegenerateGrid,
				Page:    number,
				Message: fmt.Sprintf("cell size %.2f x %.2f, skipping stitch and symbol extraction", g.CellWidth, g.CellHeight),
			})
		} else {
			page.Stitches = append(page.Stitches, stitch.Extract(content.Drawings, mapper)...)
			page.Symbols = append(page.Symbols, text.ExtractSymbols(content.Text, mapper)...)
		}

		if stats.Regularity < 0.5 {
			warnings = append(warnings, Warning{
				Code:    WarnIrregularGrid,
				Page:    number,
				Message: fmt.Sprintf("uneven line spacing, regularity %.2f", stats.Regularity),
			})
		}

	case len(content.Drawings) == 0 && len(content.Text) == 0:
		warnings = append(warnings, Warning{
			Code:    WarnEmptyPage,
			Page:    number,
			Message: "no drawings or text",
		})

	default:
		warnings = append(warnings, Warning{
			Code: WarnGridNotDetected,
			Page: number,
			Message: fmt.Sprintf("%d horizontal and %d vertical grid lines, need %d of each",
				stats.FilteredHorizontals, stats.FilteredVerticals, p.options.minGridLines),
		})
	}

	page.Colors = append(page.Colors, stitch.PageColors(content.Drawings)...)
	page.Legend = append(page.Legend, text.ClassifyLegend(content.Text)...)

	return pageResult{page: page, warnings: warnings}
}
