package pagemark

import "github.com/pagemark/pagemark/colors"

// ExtractOptions holds configuration for record extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Color filtering
	colorFilter []colors.Name
	keepUnknown bool

	// Category filtering
	highlightsOnly bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:          nil, // nil means all pages
		colorFilter:    nil, // nil means all colors
		keepUnknown:    false,
		highlightsOnly: false,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		keepUnknown:    o.keepUnknown,
		highlightsOnly: o.highlightsOnly,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.colorFilter != nil {
		newOpts.colorFilter = make([]colors.Name, len(o.colorFilter))
		copy(newOpts.colorFilter, o.colorFilter)
	}

	return newOpts
}

// wantHighlight reports whether a highlight record of the given color is
// kept. Highlights outside the four canonical colors are dropped unless
// KeepUnknown was requested.
func (o ExtractOptions) wantHighlight(c colors.Name) bool {
	if c == colors.Unknown {
		return o.keepUnknown
	}
	return o.matchesFilter(c)
}

// wantAnnotation reports whether an annotation record of the given color
// is kept. Notes and other markup carry meaning regardless of color, so
// unknown is dropped only when an explicit color filter is active.
func (o ExtractOptions) wantAnnotation(c colors.Name) bool {
	if c == colors.Unknown {
		return o.keepUnknown || o.colorFilter == nil
	}
	return o.matchesFilter(c)
}

func (o ExtractOptions) matchesFilter(c colors.Name) bool {
	if o.colorFilter == nil {
		return true
	}
	for _, f := range o.colorFilter {
		if f == c {
			return true
		}
	}
	return false
}
