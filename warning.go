package stitchery

import (
	"fmt"
	"strings"
)

// WarningCode identifies a class of non-fatal problem found while
// parsing.
type WarningCode string

const (
	// WarnEmptyPage marks a page with no drawings and no text.
	WarnEmptyPage WarningCode = "empty_page"

	// WarnGridNotDetected marks a page with content but too few ruled
	// lines to form a grid.
	WarnGridNotDetected WarningCode = "grid_not_detected"

	// WarnDegenerateGrid marks a detected grid whose cell size is not
	// positive; stitch and symbol extraction is skipped for the page.
	WarnDegenerateGrid WarningCode = "degenerate_grid"

	// WarnIrregularGrid marks a detected grid with noticeably uneven
	// line spacing.
	WarnIrregularGrid WarningCode = "irregular_grid"
)

// Warning is a non-fatal problem encountered during parsing. Parsing
// continues past warnings; they explain gaps in the output.
type Warning struct {
	Code    WarningCode `json:"code"`
	Page    int         `json:"page,omitempty"`
	Message string      `json:"message"`
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s: %s", w.Page, w.Code, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings for display, one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
