package graphics

import "math"

// RuledLine is a line that runs parallel to a page axis. Position is the
// coordinate on the perpendicular axis (Y for horizontal lines, X for
// vertical ones); Start and End bound the extent along the line's own axis.
type RuledLine struct {
	Position float64
	Start    float64
	End      float64
	Length   float64
}

// Classification holds the ruled lines of a page split by orientation.
type Classification struct {
	Horizontals []RuledLine
	Verticals   []RuledLine
}

// Classifier sorts line primitives into horizontal and vertical ruled
// lines. The zero value is not useful; use NewClassifier for the defaults
// or set the fields directly.
type Classifier struct {
	// Tolerance is the maximum coordinate difference, in points, for a
	// line to count as axis-parallel.
	Tolerance float64

	// MinLineLength drops lines at or below this length. Short marks are
	// stitch symbols and decoration, not grid rules.
	MinLineLength float64
}

// NewClassifier returns a classifier with the default tolerance of 1 point
// and minimum line length of 50 points.
func NewClassifier() *Classifier {
	return &Classifier{
		Tolerance:     1.0,
		MinLineLength: 50.0,
	}
}

// Classify splits the line primitives among prims into horizontal and
// vertical ruled lines. Non-line primitives and diagonal lines are
// ignored.
func (c *Classifier) Classify(prims []Primitive) Classification {
	var result Classification

	for _, prim := range prims {
		line, isLine := prim.(Line)
		if !isLine {
			continue
		}

		switch {
		case math.Abs(line.P1.Y-line.P2.Y) < c.Tolerance:
			rl := RuledLine{
				Position: (line.P1.Y + line.P2.Y) / 2,
				Start:    math.Min(line.P1.X, line.P2.X),
				End:      math.Max(line.P1.X, line.P2.X),
				Length:   math.Abs(line.P2.X - line.P1.X),
			}
			if rl.Length > c.MinLineLength {
				result.Horizontals = append(result.Horizontals, rl)
			}
		case math.Abs(line.P1.X-line.P2.X) < c.Tolerance:
			rl := RuledLine{
				Position: (line.P1.X + line.P2.X) / 2,
				Start:    math.Min(line.P1.Y, line.P2.Y),
				End:      math.Max(line.P1.Y, line.P2.Y),
				Length:   math.Abs(line.P2.Y - line.P1.Y),
			}
			if rl.Length > c.MinLineLength {
				result.Verticals = append(result.Verticals, rl)
			}
		}
	}

	return result
}

// Statistics summarizes the drawing primitives of a page.
type Statistics struct {
	TotalLines       int `json:"total_lines"`
	HorizontalLines  int `json:"horizontal_lines"`
	VerticalLines    int `json:"vertical_lines"`
	DiagonalLines    int `json:"diagonal_lines"`
	ShortLines       int `json:"short_lines"`
	Rectangles       int `json:"rectangles"`
	FilledRectangles int `json:"filled_rectangles"`
	Curves           int `json:"curves"`
}

// Stats counts the primitives among prims by kind and orientation,
// using the classifier's tolerance and length threshold.
func (c *Classifier) Stats(prims []Primitive) Statistics {
	var s Statistics

	for _, prim := range prims {
		switch p := prim.(type) {
		case Line:
			s.TotalLines++
			switch {
			case math.Abs(p.P1.Y-p.P2.Y) < c.Tolerance:
				if math.Abs(p.P2.X-p.P1.X) > c.MinLineLength {
					s.HorizontalLines++
				} else {
					s.ShortLines++
				}
			case math.Abs(p.P1.X-p.P2.X) < c.Tolerance:
				if math.Abs(p.P2.Y-p.P1.Y) > c.MinLineLength {
					s.VerticalLines++
				} else {
					s.ShortLines++
				}
			default:
				s.DiagonalLines++
			}
		case Rect:
			s.Rectangles++
			if p.Fill != nil {
				s.FilledRectangles++
			}
		case Curve:
			s.Curves++
		}
	}

	return s
}
