package reader

import (
	"sort"
	"strings"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/pagemark/pagemark/model"
)

// Text runs carry only a baseline Y and a font size; the word box extends
// from roughly one ascender above the baseline to a small descender below.
const (
	ascenderRatio  = 0.8
	descenderRatio = 0.2

	// rowTolerance groups runs onto the same baseline.
	rowTolerance = 2.0

	// wordGapRatio is the horizontal gap, as a fraction of the font size,
	// beyond which adjacent runs belong to separate words.
	wordGapRatio = 0.25
)

// assembleWords builds positioned words from the raw text runs of a page.
// Runs are grouped onto baselines, ordered left to right, and merged into
// words wherever they abut; whitespace runs and oversized gaps split words.
// Coordinates are flipped from PDF bottom-left origin into top-left origin
// using the page height.
func assembleWords(texts []lpdf.Text, pageHeight float64) []model.Word {
	rows := groupRows(texts)

	// Top of page first. PDF Y grows upward, so larger baselines are higher.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].baseline > rows[j].baseline
	})

	var words []model.Word
	for _, row := range rows {
		sort.SliceStable(row.runs, func(i, j int) bool {
			return row.runs[i].X < row.runs[j].X
		})
		words = append(words, mergeRuns(row.runs, pageHeight)...)
	}
	return words
}

type textRow struct {
	baseline float64
	runs     []lpdf.Text
}

// groupRows gathers runs that share a baseline, within a small tolerance.
func groupRows(texts []lpdf.Text) []textRow {
	var rows []textRow
	for _, t := range texts {
		if t.S == "" {
			continue
		}

		placed := false
		for i := range rows {
			if abs(rows[i].baseline-t.Y) < rowTolerance {
				rows[i].runs = append(rows[i].runs, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, textRow{baseline: t.Y, runs: []lpdf.Text{t}})
		}
	}
	return rows
}

// mergeRuns joins adjacent runs on one baseline into words.
func mergeRuns(runs []lpdf.Text, pageHeight float64) []model.Word {
	var words []model.Word

	var sb strings.Builder
	var x0, x1, size, baseline float64

	flush := func() {
		text := sb.String()
		sb.Reset()
		if strings.TrimSpace(text) == "" {
			return
		}
		words = append(words, model.Word{
			Rect: model.NewRect(
				x0,
				pageHeight-(baseline+size*ascenderRatio),
				x1,
				pageHeight-(baseline-size*descenderRatio),
			),
			Text: strings.TrimSpace(text),
		})
	}

	for _, r := range runs {
		if strings.TrimSpace(r.S) == "" {
			flush()
			continue
		}

		if sb.Len() > 0 {
			gap := r.X - x1
			if gap > r.FontSize*wordGapRatio {
				flush()
			}
		}

		if sb.Len() == 0 {
			x0 = r.X
			x1 = r.X
			baseline = r.Y
			size = r.FontSize
		}
		if r.FontSize > size {
			size = r.FontSize
		}
		sb.WriteString(r.S)
		end := r.X + r.W
		if end > x1 {
			x1 = end
		}
	}
	flush()

	return words
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
