package graphics

import (
	"github.com/runnerback/stitchery/colors"
	"github.com/runnerback/stitchery/model"
)

// PrimitiveKind identifies the type of a drawing primitive.
type PrimitiveKind int

const (
	// KindLine is a straight line segment.
	KindLine PrimitiveKind = iota
	// KindRect is an axis-aligned rectangle.
	KindRect
	// KindCurve is a quadratic Bezier curve.
	KindCurve
)

// String returns a human-readable name for the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRect:
		return "rect"
	case KindCurve:
		return "curve"
	default:
		return "unknown"
	}
}

// Primitive is a single vector drawing operation on a page.
// Implementations are [Line], [Rect] and [Curve].
type Primitive interface {
	Kind() PrimitiveKind
	// FillColor returns the primitive's fill color, nil when unfilled.
	FillColor() colors.Value
	primitive()
}

// Line is a straight line segment between two points.
type Line struct {
	P1, P2      model.Point
	Fill        colors.Value
	Stroke      colors.Value
	StrokeWidth float64
}

// Kind returns KindLine.
func (Line) Kind() PrimitiveKind { return KindLine }

// FillColor returns the line's fill color.
func (l Line) FillColor() colors.Value { return l.Fill }

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 { return l.P1.Distance(l.P2) }

func (Line) primitive() {}

// Rect is an axis-aligned rectangle.
type Rect struct {
	BBox        model.BBox
	Fill        colors.Value
	Stroke      colors.Value
	StrokeWidth float64
}

// Kind returns KindRect.
func (Rect) Kind() PrimitiveKind { return KindRect }

// FillColor returns the rectangle's fill color.
func (r Rect) FillColor() colors.Value { return r.Fill }

func (Rect) primitive() {}

// Curve is a quadratic Bezier curve with one control point.
type Curve struct {
	P0          model.Point // Start
	P1          model.Point // Control
	P2          model.Point // End
	Fill        colors.Value
	Stroke      colors.Value
	StrokeWidth float64
}

// Kind returns KindCurve.
func (Curve) Kind() PrimitiveKind { return KindCurve }

// FillColor returns the curve's fill color.
func (c Curve) FillColor() colors.Value { return c.Fill }

func (Curve) primitive() {}
