package graphics

import (
	"math"
	"testing"

	"github.com/runnerback/stitchery/colors"
	"github.com/runnerback/stitchery/model"
)

// makeLine builds a line primitive between two points.
func makeLine(x1, y1, x2, y2 float64) Line {
	return Line{
		P1: model.Point{X: x1, Y: y1},
		P2: model.Point{X: x2, Y: y2},
	}
}

func TestClassifyHorizontal(t *testing.T) {
	c := NewClassifier()
	result := c.Classify([]Primitive{makeLine(100, 50, 0, 50.5)})

	if len(result.Horizontals) != 1 {
		t.Fatalf("Expected 1 horizontal line, got %d", len(result.Horizontals))
	}
	h := result.Horizontals[0]
	if h.Position != 50.25 {
		t.Errorf("Expected position 50.25, got %v", h.Position)
	}
	// Extent is normalized regardless of point order
	if h.Start != 0 || h.End != 100 {
		t.Errorf("Expected extent [0, 100], got [%v, %v]", h.Start, h.End)
	}
	if h.Length != 100 {
		t.Errorf("Expected length 100, got %v", h.Length)
	}
	if len(result.Verticals) != 0 {
		t.Errorf("Expected no vertical lines, got %d", len(result.Verticals))
	}
}

func TestClassifyVertical(t *testing.T) {
	c := NewClassifier()
	result := c.Classify([]Primitive{makeLine(30, 200, 30, 0)})

	if len(result.Verticals) != 1 {
		t.Fatalf("Expected 1 vertical line, got %d", len(result.Verticals))
	}
	v := result.Verticals[0]
	if v.Position != 30 {
		t.Errorf("Expected position 30, got %v", v.Position)
	}
	if v.Start != 0 || v.End != 200 {
		t.Errorf("Expected extent [0, 200], got [%v, %v]", v.Start, v.End)
	}
	if v.Length != 200 {
		t.Errorf("Expected length 200, got %v", v.Length)
	}
}

func TestClassifyDiagonalDiscarded(t *testing.T) {
	c := NewClassifier()
	result := c.Classify([]Primitive{makeLine(0, 0, 100, 100)})

	if len(result.Horizontals) != 0 || len(result.Verticals) != 0 {
		t.Errorf("Expected diagonal line to be discarded, got %d horizontal and %d vertical",
			len(result.Horizontals), len(result.Verticals))
	}
}

func TestClassifyHorizontalWinsNearTolerance(t *testing.T) {
	// A line within tolerance on both axes classifies as horizontal
	c := NewClassifier()
	result := c.Classify([]Primitive{makeLine(0, 0, 0.5, 0.5)})

	if len(result.Horizontals) != 0 {
		// Too short to survive the length filter either way
		t.Errorf("Expected short near-point line to be dropped, got %d horizontal", len(result.Horizontals))
	}

	c.MinLineLength = 0.1
	result = c.Classify([]Primitive{makeLine(0, 0, 0.5, 0.5)})
	if len(result.Horizontals) != 1 || len(result.Verticals) != 0 {
		t.Errorf("Expected horizontal classification to win, got %d horizontal and %d vertical",
			len(result.Horizontals), len(result.Verticals))
	}
}

func TestClassifyLengthFilter(t *testing.T) {
	c := NewClassifier()
	result := c.Classify([]Primitive{
		makeLine(0, 10, 50, 10), // exactly the threshold, dropped
		makeLine(0, 20, 51, 20), // above it, kept
	})

	if len(result.Horizontals) != 1 {
		t.Fatalf("Expected 1 horizontal line, got %d", len(result.Horizontals))
	}
	if result.Horizontals[0].Position != 20 {
		t.Errorf("Expected the 51pt line to survive, got position %v", result.Horizontals[0].Position)
	}
}

func TestClassifyIgnoresNonLines(t *testing.T) {
	c := NewClassifier()
	result := c.Classify([]Primitive{
		Rect{BBox: model.NewBBox(0, 0, 100, 100)},
		Curve{P0: model.Point{}, P1: model.Point{X: 5}, P2: model.Point{X: 10}},
		makeLine(0, 0, 100, 0),
	})

	if len(result.Horizontals) != 1 {
		t.Errorf("Expected only the line to classify, got %d horizontal", len(result.Horizontals))
	}
}

func TestStats(t *testing.T) {
	c := NewClassifier()
	s := c.Stats([]Primitive{
		makeLine(0, 0, 100, 0),   // horizontal
		makeLine(0, 0, 0, 100),   // vertical
		makeLine(0, 0, 100, 100), // diagonal
		makeLine(0, 5, 10, 5),    // short
		Rect{BBox: model.NewBBox(0, 0, 10, 10)},
		Rect{BBox: model.NewBBox(0, 0, 10, 10), Fill: colors.Packed(0xFF0000)},
		Curve{P0: model.Point{}, P1: model.Point{X: 5, Y: 5}, P2: model.Point{X: 10}},
	})

	if s.TotalLines != 4 {
		t.Errorf("Expected 4 total lines, got %d", s.TotalLines)
	}
	if s.HorizontalLines != 1 || s.VerticalLines != 1 {
		t.Errorf("Expected 1 horizontal and 1 vertical, got %d and %d", s.HorizontalLines, s.VerticalLines)
	}
	if s.DiagonalLines != 1 {
		t.Errorf("Expected 1 diagonal line, got %d", s.DiagonalLines)
	}
	if s.ShortLines != 1 {
		t.Errorf("Expected 1 short line, got %d", s.ShortLines)
	}
	if s.Rectangles != 2 {
		t.Errorf("Expected 2 rectangles, got %d", s.Rectangles)
	}
	if s.FilledRectangles != 1 {
		t.Errorf("Expected 1 filled rectangle, got %d", s.FilledRectangles)
	}
	if s.Curves != 1 {
		t.Errorf("Expected 1 curve, got %d", s.Curves)
	}
}

func TestLineLength(t *testing.T) {
	l := makeLine(0, 0, 3, 4)
	if got := l.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Expected length 5, got %v", got)
	}
}

func TestPrimitiveKindString(t *testing.T) {
	if KindLine.String() != "line" || KindRect.String() != "rect" || KindCurve.String() != "curve" {
		t.Error("Expected kind names line, rect, curve")
	}
	if PrimitiveKind(99).String() != "unknown" {
		t.Errorf("Expected unknown for out-of-range kind, got %s", PrimitiveKind(99).String())
	}
}

func BenchmarkClassify(b *testing.B) {
	prims := make([]Primitive, 0, 200)
	for i := 0; i < 100; i++ {
		prims = append(prims, makeLine(0, float64(i)*10, 1000, float64(i)*10))
		prims = append(prims, makeLine(float64(i)*10, 0, float64(i)*10, 1000))
	}
	c := NewClassifier()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Classify(prims)
	}
}
