package model

// Word is a positioned word on a page: a bounding rectangle plus its literal
// text. Words are produced by the PDF access layer and are read-only for the
// duration of one page's processing.
type Word struct {
	Rect Rect
	Text string
}

// WordsBounds returns the smallest rectangle containing every word's box.
// Returns the zero Rect for an empty slice.
func WordsBounds(words []Word) Rect {
	if len(words) == 0 {
		return Rect{}
	}
	bounds := words[0].Rect
	for _, w := range words[1:] {
		bounds = bounds.Union(w.Rect)
	}
	return bounds
}
