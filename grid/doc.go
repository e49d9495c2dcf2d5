// Package grid infers the stitch lattice of a pattern page from its ruled
// lines and maps page coordinates onto lattice cells.
//
// # Detection
//
// [Detector.Detect] takes the horizontal and vertical ruled lines of a page
// and decides whether they form a grid. A page needs at least
// [Detector.MinGridLines] sufficiently long lines in each orientation.
// Cell size is the dominant spacing between consecutive line positions,
// found by bucketing the gaps to one decimal and taking the most frequent
// bucket; when counts tie, the smallest spacing wins so that repeated runs
// always agree. Grids whose spacing is swamped by sub-decimal noise fall
// back to dividing the grid span evenly.
//
// # Cell mapping
//
// [CellMapper.Cell] converts a page point into a zero-based (row, column)
// address. Points outside the grid bounds are rejected rather than clamped;
// a mark outside the lattice is not a stitch.
package grid
