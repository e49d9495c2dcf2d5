// Package model defines the intermediate representation for inferred
// stitch patterns.
//
// # Geometry
//
// [Point] and [BBox] use page coordinates with the origin at the top-left
// corner and Y increasing downward, matching the convention of the
// document parsers that supply the raw input. A [BBox] marshals to JSON
// as a four-element [x0, y0, x1, y1] array, the same shape span bounding
// boxes arrive in.
//
// # Pattern structure
//
// A [Pattern] aggregates per-page results ([Page]) with document-wide
// registries:
//
//   - [Grid] - the inferred lattice for a page (nil on a page means no
//     grid was detected there)
//   - [Stitch] - one occupied cell with a type and optional color
//   - [ColorEntry] - a palette color; ids are assigned during
//     aggregation, page-local entries carry none
//   - [SymbolEntry] - a single-character glyph with every cell position
//     it occupies, accumulated across pages
//   - [LegendEntry] - a classified legend text block, page-scoped
//
// All types carry JSON tags producing the snake_case wire form consumed
// by downstream services.
package model
