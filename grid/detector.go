package grid

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/runnerback/stitchery/graphics"
	"github.com/runnerback/stitchery/model"
)

// Detector infers a stitch grid from classified ruled lines. The zero
// value is not useful; use NewDetector for the defaults or set the fields
// directly.
type Detector struct {
	// MinGridLines is the minimum number of ruled lines per orientation
	// for a page to count as gridded.
	MinGridLines int

	// MinLineLength drops ruled lines at or below this length before
	// counting. Legend separators and underlines are long enough to pass
	// classification but too short to span a chart.
	MinLineLength float64
}

// NewDetector returns a detector requiring 5 lines per orientation with a
// minimum length of 50 points.
func NewDetector() *Detector {
	return &Detector{
		MinGridLines:  5,
		MinLineLength: 50.0,
	}
}

// SpacingProfile summarizes the gap distribution along one grid axis.
type SpacingProfile struct {
	Mean   float64
	StdDev float64
	// CV is the coefficient of variation, StdDev over Mean.
	CV float64
}

// DetectionStats reports what the detector saw, whether or not a grid was
// found. The counts explain rejections; the spacing profiles quantify how
// regular a detected grid is. Stats never influence the detection result.
type DetectionStats struct {
	TotalHorizontals    int
	TotalVerticals      int
	FilteredHorizontals int
	FilteredVerticals   int

	// RowGapSamples and ColumnGapSamples hold up to ten leading gaps per
	// orientation, in sorted position order.
	RowGapSamples    []float64
	ColumnGapSamples []float64

	RowSpacing    SpacingProfile
	ColumnSpacing SpacingProfile

	// Regularity is 1 for perfectly even spacing, approaching 0 as the
	// gaps grow erratic.
	Regularity float64
}

// Detect infers a grid from the ruled lines of a page. When fewer than
// MinGridLines lines survive the length filter in either orientation, the
// returned grid has Detected false and the stats say why.
func (d *Detector) Detect(horizontals, verticals []graphics.RuledLine) (model.Grid, DetectionStats) {
	stats := DetectionStats{
		TotalHorizontals: len(horizontals),
		TotalVerticals:   len(verticals),
	}

	hs := filterByLength(horizontals, d.MinLineLength)
	vs := filterByLength(verticals, d.MinLineLength)
	stats.FilteredHorizontals = len(hs)
	stats.FilteredVerticals = len(vs)

	if len(hs) < d.MinGridLines || len(vs) < d.MinGridLines {
		return model.Grid{}, stats
	}

	rowPositions := sortedPositions(hs)
	colPositions := sortedPositions(vs)

	rowGaps := consecutiveGaps(rowPositions)
	colGaps := consecutiveGaps(colPositions)

	rows := len(rowPositions) - 1
	cols := len(colPositions) - 1
	cellHeight := modeSpacing(rowGaps)
	cellWidth := modeSpacing(colGaps)

	bounds := model.GridBounds{
		Top:    rowPositions[0],
		Bottom: rowPositions[len(rowPositions)-1],
		Left:   colPositions[0],
		Right:  colPositions[len(colPositions)-1],
	}

	// A mode of zero means every gap rounded below 0.05; fall back to
	// dividing the span evenly.
	if cellHeight == 0 && rows > 0 {
		cellHeight = (bounds.Bottom - bounds.Top) / float64(rows)
	}
	if cellWidth == 0 && cols > 0 {
		cellWidth = (bounds.Right - bounds.Left) / float64(cols)
	}

	stats.RowGapSamples = sampleGaps(rowGaps)
	stats.ColumnGapSamples = sampleGaps(colGaps)
	stats.RowSpacing = profileGaps(rowGaps)
	stats.ColumnSpacing = profileGaps(colGaps)
	stats.Regularity = (clampUnit(1-stats.RowSpacing.CV) + clampUnit(1-stats.ColumnSpacing.CV)) / 2

	return model.Grid{
		Detected:   true,
		Rows:       rows,
		Columns:    cols,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Bounds:     bounds,
		TotalCells: rows * cols,
	}, stats
}

func filterByLength(lines []graphics.RuledLine, minLength float64) []graphics.RuledLine {
	var kept []graphics.RuledLine
	for _, line := range lines {
		if line.Length > minLength {
			kept = append(kept, line)
		}
	}
	return kept
}

func sortedPositions(lines []graphics.RuledLine) []float64 {
	positions := make([]float64, len(lines))
	for i, line := range lines {
		positions[i] = line.Position
	}
	sort.Float64s(positions)
	return positions
}

func consecutiveGaps(positions []float64) []float64 {
	if len(positions) < 2 {
		return nil
	}
	gaps := make([]float64, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		gaps[i-1] = positions[i] - positions[i-1]
	}
	return gaps
}

// modeSpacing returns the most frequent gap, bucketed to one decimal.
// Ties go to the smallest spacing so results are independent of input
// order.
func modeSpacing(gaps []float64) float64 {
	if len(gaps) == 0 {
		return 0
	}
	counts := make(map[int]int)
	for _, gap := range gaps {
		counts[int(math.Round(gap*10))]++
	}
	best, bestCount := 0, 0
	for bucket, count := range counts {
		if count > bestCount || (count == bestCount && bucket < best) {
			best, bestCount = bucket, count
		}
	}
	return float64(best) / 10
}

const maxGapSamples = 10

func sampleGaps(gaps []float64) []float64 {
	if len(gaps) > maxGapSamples {
		gaps = gaps[:maxGapSamples]
	}
	return append([]float64(nil), gaps...)
}

func profileGaps(gaps []float64) SpacingProfile {
	if len(gaps) == 0 {
		return SpacingProfile{}
	}
	p := SpacingProfile{Mean: stat.Mean(gaps, nil)}
	if len(gaps) >= 2 {
		p.StdDev = stat.StdDev(gaps, nil)
	}
	if p.Mean != 0 {
		p.CV = p.StdDev / p.Mean
	}
	return p
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
