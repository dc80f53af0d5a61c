package ariagrid

// ExtractOptions holds configuration for grid extraction.
type ExtractOptions struct {
	// keepPresentation leaves style, class, tabindex and aria-*
	// attributes in place instead of stripping them before traversal.
	keepPresentation bool

	// minRows drops reconstructed tables with fewer rows. Zero keeps
	// everything.
	minRows int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		keepPresentation: false,
		minRows:          0,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		keepPresentation: o.keepPresentation,
		minRows:          o.minRows,
	}
}
