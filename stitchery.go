// Package stitchery infers cross-stitch patterns from document page
// geometry. It turns the vector drawings and text spans of a chart page
// into a structured pattern: the grid lattice, the stitches placed on it,
// the colors in use, and the symbol and legend registry.
//
// Basic usage:
//
//	pattern, warnings, err := stitchery.Parse(doc)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", stitchery.FormatWarnings(warnings))
//	}
//
// With options:
//
//	pattern, _, err := stitchery.From(doc).
//	    Pages(1, 2, 3).
//	    Concurrency(4).
//	    Pattern()
//
// For finer control, the graphics, grid, text and stitch packages expose
// the individual pipeline stages.
package stitchery

import "github.com/runnerback/stitchery/model"

// Parse infers a pattern from a document using the default configuration.
// It is shorthand for From(doc).Pattern().
//
// Example:
//
//	pattern, warnings, err := stitchery.Parse(doc)
func Parse(doc Document) (*model.Pattern, []Warning, error) {
	return From(doc).Pattern()
}

// From wraps a document in a Parser for fluent configuration.
//
// Example:
//
//	pattern, warnings, err := stitchery.From(doc).Pages(1).Pattern()
func From(doc Document) *Parser {
	return &Parser{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	summary := stitchery.Must(stitchery.From(doc).Summary())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustPattern is a helper that wraps a call to Pattern() and panics if the
// error is non-nil. It discards warnings and returns just the value. It is
// intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	pattern := stitchery.MustPattern(stitchery.Parse(doc))
func MustPattern[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
