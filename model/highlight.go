package model

import "github.com/pagemark/pagemark/colors"

// Category distinguishes reconstructed background highlights from other
// markup annotations (notes, underlines, strikeouts).
type Category string

const (
	CategoryAnnotation Category = "annotation"
	CategoryHighlight  Category = "highlight"
)

// Region is the geometric input for one annotation: a single rectangle, or
// a list of per-line quad rectangles for multi-line native highlights,
// together with the raw color sample the annotation carries.
type Region struct {
	// Page is the 1-based page number the region appears on.
	Page int

	// Rects holds one rectangle, or one rectangle per highlighted line for
	// native highlight annotations with quad points.
	Rects []Rect

	// Fill and Stroke are the raw color channel samples as stored in the
	// annotation. Either may be empty.
	Fill   []float64
	Stroke []float64
}

// Bounds returns the union of all region rectangles.
func (rg Region) Bounds() Rect {
	if len(rg.Rects) == 0 {
		return Rect{}
	}
	bounds := rg.Rects[0]
	for _, r := range rg.Rects[1:] {
		bounds = bounds.Union(r)
	}
	return bounds
}

// Record is one reconstructed highlight or annotation. Records are created
// by the extraction stage, may be joined by the hyphenation merger, and are
// finally filtered by the deduplicator. Text is never empty; regions whose
// reconstruction yields no text produce no Record at all.
type Record struct {
	// Page is the 1-based page number. For cross-page merges this is the
	// page the hyphenated fragment started on.
	Page int `json:"page"`

	// Text is the reconstructed reading-order text.
	Text string `json:"text"`

	// Color is the classified highlight color, one of the four canonical
	// names or "unknown".
	Color colors.Name `json:"color"`

	// Category reports whether this record came from a background highlight
	// or another markup annotation.
	Category Category `json:"category"`

	// Y0 and X0 anchor the record at the top-left corner of its originating
	// region. All document-wide ordering uses (Page, Y0).
	Y0 float64 `json:"y_position"`
	X0 float64 `json:"x_position"`

	// HyphenMerged is set when the record absorbed a same-page hyphenated
	// continuation.
	HyphenMerged bool `json:"hyphen_merged,omitempty"`

	// PagesSpanned describes a cross-page merge, e.g. "Pages 3-4".
	PagesSpanned string `json:"pages_spanned,omitempty"`

	// Method records which extraction strategy produced the text.
	Method string `json:"method,omitempty"`
}

// MergeNote returns a short human-readable tag describing how the record
// was merged, or the empty string for unmerged records.
func (rec Record) MergeNote() string {
	if rec.PagesSpanned != "" {
		return rec.PagesSpanned
	}
	if rec.HyphenMerged {
		return "hyphen-merged"
	}
	return ""
}
