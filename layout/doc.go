// Package layout provides the geometric analysis used to recover reading
// order inside highlighted regions: a spatial index over a page's words and
// a greedy line clusterer.
//
// # Word Geometry Index
//
// [WordIndex] answers overlap queries against the full word list of a page.
// It is built once per page and shared by the reconstruction and completion
// stages:
//
//	idx := layout.NewWordIndex(page.Words())
//	hits := idx.Overlapping(region, layout.DefaultMinOverlap)
//
// Query results always preserve the order words appear in on the page;
// callers impose their own ordering.
//
// # Line Clustering
//
// [LineClusterer] groups candidate words into horizontal lines by vertical
// center proximity, then orders lines top to bottom and words within a line
// left to right. The clustering is greedy first-fit: near-tolerance ties are
// resolved by insertion order, which keeps results deterministic for a given
// input order but is not a globally optimal grouping.
package layout
