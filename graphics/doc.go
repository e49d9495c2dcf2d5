// Package graphics models the vector drawing primitives of a document page
// and classifies them for grid inference.
//
// # Primitives
//
// A page's drawings are a flat list of [Primitive] values: [Line], [Rect]
// and [Curve]. Each carries the fill and stroke colors reported by the
// document producer. Primitives are plain values; building them requires no
// constructor.
//
// # Classification
//
// [Classifier.Classify] sorts line primitives into horizontal and vertical
// ruled lines. A line counts as horizontal when its endpoints' Y
// coordinates differ by less than the tolerance, vertical when the X
// coordinates do; anything else is treated as decoration and discarded,
// as are lines shorter than the minimum length. The surviving
// [RuledLine] values feed grid detection.
package graphics
