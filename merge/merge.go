// Package merge post-processes extracted records: joining text split by
// line-break hyphenation and dropping near-duplicate records.
package merge

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/pagemark/pagemark/model"
)

// Config holds the merge and deduplication thresholds.
type Config struct {
	// MinLineGap and MaxLineGap bound the vertical distance, in points,
	// between two records that may be consecutive lines of one passage.
	MinLineGap float64 `yaml:"min_line_gap"`
	MaxLineGap float64 `yaml:"max_line_gap"`

	// PageTopLimit is how far from the top of a page, in points, a record
	// must start to count as a cross-page continuation.
	PageTopLimit float64 `yaml:"page_top_limit"`

	// DedupeGap is the vertical distance, in points, within which two
	// records on a page are compared for duplication.
	DedupeGap float64 `yaml:"dedupe_gap"`

	// DedupeSimilarity is the word-set overlap above which two nearby
	// records count as duplicates.
	DedupeSimilarity float64 `yaml:"dedupe_similarity"`
}

// DefaultConfig returns the thresholds tuned for single-column text at
// typical line heights.
func DefaultConfig() Config {
	return Config{
		MinLineGap:       8,
		MaxLineGap:       30,
		PageTopLimit:     150,
		DedupeGap:        10,
		DedupeSimilarity: 0.9,
	}
}

// HyphenMerger joins records whose text was split across a line break.
type HyphenMerger struct {
	cfg Config
}

// NewHyphenMerger returns a merger with default thresholds.
func NewHyphenMerger() *HyphenMerger {
	return NewHyphenMergerWithConfig(DefaultConfig())
}

// NewHyphenMergerWithConfig returns a merger with the given thresholds.
func NewHyphenMergerWithConfig(cfg Config) *HyphenMerger {
	return &HyphenMerger{cfg: cfg}
}

// Merge joins adjacent record pairs where the first ends in a line-break
// hyphen and the second sits where its continuation would be. The walk is
// greedy and non-backtracking: each record can merge at most once, as
// either side of a pair, and three-way chains are left as two records.
func (m *HyphenMerger) Merge(records []model.Record) []model.Record {
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
		if a.Color != b.Color {
			return a.Color < b.Color
		}
		if a.Y0 != b.Y0 {
			return a.Y0 < b.Y0
		}
		return a.X0 < b.X0
	})

	out := make([]model.Record, 0, len(sorted))
	for i := 0; i < len(sorted); i++ {
		cur := sorted[i]
		if i+1 < len(sorted) && m.isClearHyphenation(cur, sorted[i+1]) {
			cur = m.join(cur, sorted[i+1])
			i++
		}
		if repaired, changed := repairSplitWords(cur.Text); changed {
			cur.Text = repaired
			cur.HyphenMerged = true
		}
		out = append(out, cur)
	}
	return out
}

// repairSplitWords joins word fragments split by a line break inside one
// record's text. A fragment ends in a hyphen preceded by a letter and is
// followed by a lowercase continuation, the shape a multi-line highlight
// leaves behind after its lines are joined with spaces.
func repairSplitWords(text string) (string, bool) {
	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		return text, false
	}

	out := make([]string, 0, len(tokens))
	changed := false
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if i+1 < len(tokens) && isSplitFragment(tok) && startsLower(tokens[i+1]) {
			out = append(out, strings.TrimSuffix(tok, "-")+tokens[i+1])
			i++
			changed = true
			continue
		}
		out = append(out, tok)
	}
	if !changed {
		return text, false
	}
	return strings.Join(out, " "), true
}

func isSplitFragment(tok string) bool {
	runes := []rune(tok)
	if len(runes) < 3 || runes[len(runes)-1] != '-' {
		return false
	}
	return unicode.IsLetter(runes[len(runes)-2])
}

func startsLower(tok string) bool {
	for _, r := range tok {
		return unicode.IsLower(r)
	}
	return false
}

// isClearHyphenation decides whether b is the continuation of a word cut
// by a line break at the end of a.
func (m *HyphenMerger) isClearHyphenation(a, b model.Record) bool {
	if a.Color != b.Color {
		return false
	}
	if !strings.HasSuffix(strings.TrimSpace(a.Text), "-") {
		return false
	}

	if b.Page == a.Page {
		gap := b.Y0 - a.Y0
		return gap >= m.cfg.MinLineGap && gap <= m.cfg.MaxLineGap
	}

	// Cross-page continuation lands near the top of the following page.
	if b.Page == a.Page+1 {
		return b.Y0 < m.cfg.PageTopLimit
	}
	return false
}

// join combines a pair into one record carrying a's metadata.
func (m *HyphenMerger) join(a, b model.Record) model.Record {
	merged := a
	merged.Text = JoinText(a.Text, b.Text)
	if b.Page == a.Page {
		merged.HyphenMerged = true
	} else {
		merged.PagesSpanned = fmt.Sprintf("Pages %d-%d", a.Page, b.Page)
	}
	return merged
}

// JoinText concatenates two text fragments. A trailing hyphen on the
// first fragment marks a word split by the line break and is removed; in
// every other case the fragments join with a space.
func JoinText(a, b string) string {
	a = strings.TrimRight(a, " ")
	b = strings.TrimLeft(b, " ")
	if strings.HasSuffix(a, "-") {
		return strings.TrimSuffix(a, "-") + b
	}
	return a + " " + b
}
