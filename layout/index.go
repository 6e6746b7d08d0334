package layout

import (
	"sort"

	"github.com/tidwall/rtree"

	"github.com/pagemark/pagemark/model"
)

// DefaultMinOverlap is the fraction of a word's bounding box that must fall
// inside a query region for the word to count as part of it.
const DefaultMinOverlap = 0.40

// WordIndex is a spatial index over one page's words. It supports overlap
// queries while preserving the original word order in results. A WordIndex
// is immutable after construction and lives only as long as its page.
type WordIndex struct {
	words []model.Word
	tree  rtree.RTreeG[int]
}

// NewWordIndex builds an index over the given words. The slice is retained;
// callers must not mutate it while the index is in use.
func NewWordIndex(words []model.Word) *WordIndex {
	idx := &WordIndex{words: words}
	for i, w := range words {
		r := w.Rect
		idx.tree.Insert([2]float64{r.X0, r.Y0}, [2]float64{r.X1, r.Y1}, i)
	}
	return idx
}

// Len returns the number of indexed words.
func (idx *WordIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.words)
}

// Words returns the indexed words in page order.
func (idx *WordIndex) Words() []model.Word {
	if idx == nil {
		return nil
	}
	return idx.words
}

// Overlapping returns the words whose boxes overlap region by at least
// minRatio of their own area, in the order they appear on the page.
// Zero-area words never match. Callers expand the region before querying
// when boundary words should be admitted.
func (idx *WordIndex) Overlapping(region model.Rect, minRatio float64) []model.Word {
	hits := idx.candidates(region)

	out := make([]model.Word, 0, len(hits))
	for _, i := range hits {
		w := idx.words[i]
		if w.Rect.IsEmpty() {
			continue
		}
		if region.CoverageOf(w.Rect) >= minRatio {
			out = append(out, w)
		}
	}
	return out
}

// Intersecting returns the words whose boxes intersect region at all,
// in page order. Used for boundary-word completion, where any contact with
// the search neighborhood qualifies a candidate.
func (idx *WordIndex) Intersecting(region model.Rect) []model.Word {
	hits := idx.candidates(region)

	out := make([]model.Word, 0, len(hits))
	for _, i := range hits {
		w := idx.words[i]
		if !w.Rect.IsEmpty() && region.Intersects(w.Rect) {
			out = append(out, w)
		}
	}
	return out
}

// candidates runs the rtree search and restores page order, since the tree
// returns hits in traversal order.
func (idx *WordIndex) candidates(region model.Rect) []int {
	if idx == nil || len(idx.words) == 0 {
		return nil
	}

	var hits []int
	idx.tree.Search(
		[2]float64{region.X0, region.Y0},
		[2]float64{region.X1, region.Y1},
		func(_, _ [2]float64, i int) bool {
			hits = append(hits, i)
			return true
		},
	)
	sort.Ints(hits)
	return hits
}
