package reader

import "github.com/pagemark/pagemark/model"

// AnnotationType is the PDF annotation subtype name.
type AnnotationType string

const (
	Highlight AnnotationType = "Highlight"
	Squiggly  AnnotationType = "Squiggly"
	StrikeOut AnnotationType = "StrikeOut"
	Underline AnnotationType = "Underline"
	FreeText  AnnotationType = "FreeText"
	Text      AnnotationType = "Text"
)

// Markup returns true for the annotation subtypes the extraction pipeline
// processes. Link, widget, popup and other structural annotations are not
// markup and are skipped.
func (t AnnotationType) Markup() bool {
	switch t {
	case Highlight, Squiggly, StrikeOut, Underline, FreeText, Text:
		return true
	}
	return false
}

// Annotation is one annotation record as reported by the PDF access layer.
type Annotation struct {
	// Type is the annotation subtype.
	Type AnnotationType

	// Rect is the annotation's overall bounding rectangle.
	Rect model.Rect

	// Quads holds one rectangle per highlighted line for annotations with
	// quad points. Empty when the annotation has none; callers fall back
	// to Rect.
	Quads []model.Rect

	// Fill and Stroke are the raw color channel samples. Either may be
	// empty; values may be normalized [0,1] or raw [0,255] depending on
	// the producer.
	Fill   []float64
	Stroke []float64

	// Contents is the annotation's literal note text, if any.
	Contents string
}

// Region converts the annotation's geometry and color sample into the
// model form the reconstruction engine consumes. Quad rectangles are
// preferred over the overall bounding rect when present.
func (a Annotation) Region(page int) model.Region {
	rects := a.Quads
	if len(rects) == 0 {
		rects = []model.Rect{a.Rect}
	}
	return model.Region{
		Page:   page,
		Rects:  rects,
		Fill:   a.Fill,
		Stroke: a.Stroke,
	}
}

// Block is a coarse text block within a region: a bounding rectangle plus
// assembled text.
type Block struct {
	Rect model.Rect
	Text string
}

// Page exposes the per-page data the extraction engine needs. All methods
// are read-only and safe to call repeatedly.
type Page interface {
	// Annotations returns the page's annotation records in storage order.
	Annotations() []Annotation

	// Words returns the page's positioned words. Order is whatever the
	// underlying storage yields; callers must not assume reading order.
	Words() []model.Word

	// TextInRegion returns the text clipped to the region, with the
	// source's own reading-order sort applied when sorted is true.
	// Returns "" when the source cannot extract text for the region.
	TextInRegion(r model.Rect, sorted bool) string

	// TextBlocks returns coarse text blocks intersecting the region, in no
	// particular order. Returns nil when the source cannot provide blocks.
	TextBlocks(r model.Rect) []Block
}

// Source is an open PDF document yielding pages by 0-based index.
type Source interface {
	PageCount() int
	Page(n int) (Page, error)
	Close() error
}
