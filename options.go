package stitchery

// parseOptions holds configuration for pattern inference.
type parseOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Worker count for page processing
	concurrency int

	// Geometry thresholds
	tolerance     float64
	minLineLength float64
	minGridLines  int
}

// defaultOptions returns the default parse options.
func defaultOptions() parseOptions {
	return parseOptions{
		pages:         nil, // nil means all pages
		concurrency:   1,
		tolerance:     1.0,
		minLineLength: 50.0,
		minGridLines:  5,
	}
}

// clone creates a deep copy of parseOptions.
func (o parseOptions) clone() parseOptions {
	newOpts := parseOptions{
		concurrency:   o.concurrency,
		tolerance:     o.tolerance,
		minLineLength: o.minLineLength,
		minGridLines:  o.minGridLines,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
