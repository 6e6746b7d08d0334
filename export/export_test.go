package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/pagemark/pagemark/colors"
	"github.com/pagemark/pagemark/model"
)

func sample() []model.Record {
	return []model.Record{
		{
			Page: 1, Text: "check this", Color: colors.Blue,
			Category: model.CategoryAnnotation, Y0: 100, X0: 10,
		},
		{
			Page: 2, Text: "Natural language processing", Color: colors.Yellow,
			Category: model.CategoryHighlight, Y0: 200, X0: 10,
			HyphenMerged: true,
		},
		{
			Page: 3, Text: "international", Color: colors.Green,
			Category: model.CategoryHighlight, Y0: 700, X0: 40,
			PagesSpanned: "Pages 3-4",
		},
	}
}

func TestBuild_SplitsByCategory(t *testing.T) {
	ex := Build(sample())
	if len(ex.Annotations) != 1 || len(ex.Highlights) != 2 {
		t.Fatalf("split = %d/%d", len(ex.Annotations), len(ex.Highlights))
	}
	if ex.Summary.TotalAnnotations != 1 || ex.Summary.TotalHighlights != 2 {
		t.Errorf("summary = %+v", ex.Summary)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	ex := Build(nil)
	if ex.Annotations == nil || ex.Highlights == nil {
		t.Error("categories should marshal as empty arrays, not null")
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var ex Export
	if err := sonic.Unmarshal(buf.Bytes(), &ex); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(ex.Highlights) != 2 {
		t.Fatalf("highlights = %d", len(ex.Highlights))
	}
	if ex.Highlights[0].Text != "Natural language processing" {
		t.Errorf("text = %q", ex.Highlights[0].Text)
	}
	if !ex.Highlights[0].HyphenMerged {
		t.Error("hyphen merge flag lost")
	}
	if ex.Highlights[1].PagesSpanned != "Pages 3-4" {
		t.Errorf("pages spanned = %q", ex.Highlights[1].PagesSpanned)
	}
}

func TestWriteJSON_OmitsEmptyMergeFields(t *testing.T) {
	var buf bytes.Buffer
	records := []model.Record{{
		Page: 1, Text: "plain", Color: colors.Pink,
		Category: model.CategoryHighlight, Y0: 50, X0: 5,
	}}
	if err := WriteJSON(&buf, records); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "hyphen_merged") || strings.Contains(out, "pages_spanned") {
		t.Errorf("empty merge fields serialized:\n%s", out)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "page" || rows[0][6] != "merged" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[2][1] != "Natural language processing" {
		t.Errorf("text cell = %q", rows[2][1])
	}
	if rows[2][6] != "hyphen-merged" {
		t.Errorf("merge cell = %q", rows[2][6])
	}
	if rows[3][6] != "Pages 3-4" {
		t.Errorf("cross-page cell = %q", rows[3][6])
	}
	if rows[1][4] != "100.0" {
		t.Errorf("y cell = %q", rows[1][4])
	}
}
