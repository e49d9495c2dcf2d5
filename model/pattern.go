package model

// GridBounds holds the outer edges of a detected grid in page coordinates.
type GridBounds struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Grid describes the stitch lattice inferred from the ruled lines of a page.
// Rows and Columns count cells, not lines. CellWidth and CellHeight are the
// dominant spacing between consecutive grid lines.
type Grid struct {
	Detected   bool       `json:"detected"`
	Rows       int        `json:"rows"`
	Columns    int        `json:"columns"`
	CellWidth  float64    `json:"cell_width"`
	CellHeight float64    `json:"cell_height"`
	Bounds     GridBounds `json:"bounds"`
	TotalCells int        `json:"total_cells"`
}

// Degenerate reports whether the grid has a non-positive cell size and
// cannot be used to map points to cells.
func (g Grid) Degenerate() bool {
	return g.CellWidth <= 0 || g.CellHeight <= 0
}

// StitchType identifies the kind of stitch placed in a cell.
type StitchType string

const (
	// StitchCross is a cross stitch, marked by a diagonal line.
	StitchCross StitchType = "cross"
	// StitchFull is a full stitch, marked by a filled rectangle.
	StitchFull StitchType = "full"
)

// Stitch is a single stitch placed at a grid cell. Color is the resolved
// hex color of the mark, empty when the fill color could not be resolved.
type Stitch struct {
	Row   int        `json:"row"`
	Col   int        `json:"col"`
	Type  StitchType `json:"type"`
	Color string     `json:"color,omitempty"`
}

// RGB holds an 8-bit color triple.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ColorEntry is a color in a page color list or the document palette.
// ID is assigned only for palette entries, in first-seen order starting
// at 1; page-local color lists leave it zero.
type ColorEntry struct {
	ID  int    `json:"id,omitempty"`
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
}

// Symbol is a single-character pattern symbol mapped to a grid cell.
type Symbol struct {
	Glyph string `json:"symbol"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	BBox  BBox   `json:"bbox"`
}

// Position is a row/column cell address.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SymbolEntry is a document-level symbol with every cell it occupies,
// in page order.
type SymbolEntry struct {
	Glyph     string     `json:"symbol"`
	Positions []Position `json:"positions"`
}

// LegendType classifies a legend text block.
type LegendType string

const (
	// LegendThreadInfo marks text mentioning a thread brand.
	LegendThreadInfo LegendType = "thread_info"
	// LegendColorInfo marks text mentioning color terminology.
	LegendColorInfo LegendType = "color_info"
)

// LegendEntry is a classified block of legend text.
type LegendEntry struct {
	Type LegendType `json:"type"`
	Text string     `json:"text"`
}

// Page holds everything inferred from a single document page. Grid is nil
// when no grid was detected.
type Page struct {
	Number   int           `json:"page_number"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Grid     *Grid         `json:"grid"`
	Stitches []Stitch      `json:"stitches"`
	Colors   []ColorEntry  `json:"colors"`
	Symbols  []Symbol      `json:"symbols"`
	Legend   []LegendEntry `json:"legend"`
}

// NewPage creates an empty page with the given dimensions. Collection
// fields are initialized so they serialize as empty arrays rather than
// null.
func NewPage(width, height float64) *Page {
	return &Page{
		Width:    width,
		Height:   height,
		Stitches: []Stitch{},
		Colors:   []ColorEntry{},
		Symbols:  []Symbol{},
		Legend:   []LegendEntry{},
	}
}

// Metadata holds document metadata, passed through to the pattern
// verbatim.
type Metadata struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Keywords string `json:"keywords,omitempty"`
	Creator  string `json:"creator,omitempty"`
	Producer string `json:"producer,omitempty"`
}

// Pattern is the complete stitch pattern inferred from a document.
type Pattern struct {
	Pages      []*Page       `json:"pages"`
	Info       Metadata      `json:"pattern_info"`
	Palette    []ColorEntry  `json:"color_palette"`
	Symbols    []SymbolEntry `json:"symbols"`
	TotalPages int           `json:"total_pages"`
}

// NewPattern creates an empty pattern.
func NewPattern() *Pattern {
	return &Pattern{
		Pages:   []*Page{},
		Palette: []ColorEntry{},
		Symbols: []SymbolEntry{},
	}
}

// AddPage appends a page to the pattern. Pages without a number are
// numbered sequentially from 1.
func (p *Pattern) AddPage(page *Page) {
	if page.Number == 0 {
		page.Number = len(p.Pages) + 1
	}
	p.Pages = append(p.Pages, page)
}

// GetPage returns the page with the given 1-based number, or nil.
func (p *Pattern) GetPage(number int) *Page {
	for _, page := range p.Pages {
		if page.Number == number {
			return page
		}
	}
	return nil
}

// PageCount returns the number of pages in the pattern.
func (p *Pattern) PageCount() int {
	return len(p.Pages)
}

// StitchCount returns the total number of stitches across all pages.
func (p *Pattern) StitchCount() int {
	n := 0
	for _, page := range p.Pages {
		n += len(page.Stitches)
	}
	return n
}
