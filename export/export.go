// Package export serializes extraction results to JSON and CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/bytedance/sonic"

	"github.com/pagemark/pagemark/model"
)

// Summary holds the record counts reported alongside an export.
type Summary struct {
	TotalAnnotations int `json:"total_annotations"`
	TotalHighlights  int `json:"total_highlights"`
}

// Export is the JSON document structure: records split by category plus a
// summary block.
type Export struct {
	Annotations []model.Record `json:"annotations"`
	Highlights  []model.Record `json:"highlights"`
	Summary     Summary        `json:"summary"`
}

// Build splits records by category and computes the summary. Record order
// is preserved within each category.
func Build(records []model.Record) Export {
	ex := Export{
		Annotations: []model.Record{},
		Highlights:  []model.Record{},
	}
	for _, r := range records {
		if r.Category == model.CategoryHighlight {
			ex.Highlights = append(ex.Highlights, r)
		} else {
			ex.Annotations = append(ex.Annotations, r)
		}
	}
	ex.Summary = Summary{
		TotalAnnotations: len(ex.Annotations),
		TotalHighlights:  len(ex.Highlights),
	}
	return ex
}

// WriteJSON writes the records as an indented JSON document.
func WriteJSON(w io.Writer, records []model.Record) error {
	data, err := sonic.MarshalIndent(Build(records), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// csvHeader is the column layout of CSV exports.
var csvHeader = []string{"page", "text", "color", "category", "y_position", "x_position", "merged"}

// WriteCSV writes the records as CSV with a header row.
func WriteCSV(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Page),
			r.Text,
			string(r.Color),
			string(r.Category),
			strconv.FormatFloat(r.Y0, 'f', 1, 64),
			strconv.FormatFloat(r.X0, 'f', 1, 64),
			r.MergeNote(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
