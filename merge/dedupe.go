package merge

import (
	"sort"
	"strings"

	"github.com/pagemark/pagemark/model"
)

// Deduplicator removes near-duplicate records produced by overlapping
// detections of the same region.
type Deduplicator struct {
	cfg Config
}

// NewDeduplicator returns a deduplicator with default thresholds.
func NewDeduplicator() *Deduplicator {
	return NewDeduplicatorWithConfig(DefaultConfig())
}

// NewDeduplicatorWithConfig returns a deduplicator with the given
// thresholds.
func NewDeduplicatorWithConfig(cfg Config) *Deduplicator {
	return &Deduplicator{cfg: cfg}
}

// Deduplicate drops records that duplicate an already-accepted record on
// the same page, same color, within the vertical proximity window. A
// shorter accepted text is upgraded in place when a longer superset of it
// arrives. Shorter texts sort first, so the anchor record is always the
// shortest of a duplicate group.
func (d *Deduplicator) Deduplicate(records []model.Record) []model.Record {
	if len(records) < 2 {
		return records
	}

	sorted := make([]model.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Y0 != b.Y0 {
			return a.Y0 < b.Y0
		}
		return len(a.Text) < len(b.Text)
	})

	var accepted []model.Record
	for _, rec := range sorted {
		if !d.absorb(accepted, rec) {
			accepted = append(accepted, rec)
		}
	}
	return accepted
}

// absorb reports whether rec duplicates an accepted record, upgrading the
// accepted record's text when rec is the longer variant.
func (d *Deduplicator) absorb(accepted []model.Record, rec model.Record) bool {
	text := strings.ToLower(strings.TrimSpace(rec.Text))

	for i := range accepted {
		prev := &accepted[i]
		if prev.Page != rec.Page || prev.Color != rec.Color {
			continue
		}
		if gap := rec.Y0 - prev.Y0; gap < -d.cfg.DedupeGap || gap > d.cfg.DedupeGap {
			continue
		}

		prevText := strings.ToLower(strings.TrimSpace(prev.Text))
		if strings.Contains(prevText, text) {
			return true
		}
		if strings.Contains(text, prevText) {
			prev.Text = rec.Text
			return true
		}
		if jaccard(prevText, text) > d.cfg.DedupeSimilarity {
			return true
		}
	}
	return false
}

// jaccard computes word-set overlap between two lowercase strings.
func jaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
