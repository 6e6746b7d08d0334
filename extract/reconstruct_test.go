package extract

import (
	"strings"
	"testing"

	"github.com/pagemark/pagemark/model"
	"github.com/pagemark/pagemark/reader"
)

// fakePage is a scriptable reader.Page for pipeline tests.
type fakePage struct {
	words  []model.Word
	annots []reader.Annotation

	regionText string
	blocks     []reader.Block

	clipRect model.Rect
}

func (p *fakePage) Annotations() []reader.Annotation { return p.annots }
func (p *fakePage) Words() []model.Word              { return p.words }

func (p *fakePage) TextInRegion(r model.Rect, sorted bool) string {
	p.clipRect = r
	return p.regionText
}

func (p *fakePage) TextBlocks(r model.Rect) []reader.Block {
	return p.blocks
}

func word(text string, x0, y0, x1, y1 float64) model.Word {
	return model.Word{Rect: model.NewRect(x0, y0, x1, y1), Text: text}
}

func TestReconstruct_SortedTextWins(t *testing.T) {
	page := &fakePage{regionText: "direct  extraction\tworks"}
	ctx := NewPageContext(page)
	region := model.Region{Page: 0, Rects: []model.Rect{model.NewRect(0, 0, 100, 20)}}

	rc := NewReconstructor()
	text, method := rc.Reconstruct(ctx, region)
	if method != MethodSorted {
		t.Fatalf("expected sorted method, got %q", method)
	}
	if text != "direct extraction works" {
		t.Errorf("whitespace not collapsed: %q", text)
	}
}

func TestReconstruct_SortedClipIsExpanded(t *testing.T) {
	page := &fakePage{regionText: "clipped text"}
	ctx := NewPageContext(page)
	region := model.Region{Page: 0, Rects: []model.Rect{model.NewRect(10, 100, 110, 112)}}

	rc := NewReconstructor()
	rc.Reconstruct(ctx, region)

	want := model.NewRect(8, 99, 112, 113)
	if page.clipRect != want {
		t.Errorf("clip rect = %+v, want %+v", page.clipRect, want)
	}
}

func TestReconstruct_WordFallbackAdmitsBoundaryWord(t *testing.T) {
	// "end" sticks one unit past the quad's right edge; the expanded quad
	// covers enough of it to pass the overlap threshold.
	page := &fakePage{
		words: []model.Word{
			word("the", 10, 100, 40, 112),
			word("end", 99, 100, 104, 112),
		},
	}
	ctx := NewPageContext(page)
	region := model.Region{Page: 0, Rects: []model.Rect{model.NewRect(10, 100, 100, 112)}}

	rc := NewReconstructor()
	text, method := rc.Reconstruct(ctx, region)
	if method != MethodWords {
		t.Fatalf("expected words method, got %q", method)
	}
	if text != "the end" {
		t.Errorf("boundary word dropped: got %q, want %q", text, "the end")
	}
}

func TestReconstruct_FallsBackToBlocks(t *testing.T) {
	page := &fakePage{
		blocks: []reader.Block{
			{Rect: model.NewRect(10, 120, 200, 132), Text: "second line"},
			{Rect: model.NewRect(10, 100, 200, 112), Text: "first line"},
		},
	}
	ctx := NewPageContext(page)
	region := model.Region{Page: 0, Rects: []model.Rect{model.NewRect(10, 100, 200, 132)}}

	rc := NewReconstructor()
	text, method := rc.Reconstruct(ctx, region)
	if method != MethodBlocks {
		t.Fatalf("expected blocks method, got %q", method)
	}
	if text != "first line second line" {
		t.Errorf("blocks not ordered by position: %q", text)
	}
}

func TestReconstruct_WordFallbackMultiLine(t *testing.T) {
	// Two highlighted lines, words stored out of reading order. Only the
	// word strategy is available.
	page := &fakePage{
		words: []model.Word{
			word("ing", 10, 114, 28, 126),
			word("Natural", 10, 100, 52, 112),
			word("process-", 110, 100, 160, 112),
			word("language", 58, 100, 104, 112),
		},
	}
	ctx := NewPageContext(page)
	region := model.Region{
		Page: 1,
		Rects: []model.Rect{
			model.NewRect(10, 100, 160, 112),
			model.NewRect(10, 114, 28, 126),
		},
	}

	rc := NewReconstructor()
	text, method := rc.Reconstruct(ctx, region)
	if method != MethodWords {
		t.Fatalf("expected words method, got %q", method)
	}
	if text != "Natural language process- ing" {
		t.Errorf("unexpected reconstruction: %q", text)
	}
}

func TestReconstruct_WordFallbackDeduplicatesQuadOverlap(t *testing.T) {
	// Overlapping quads must not repeat the words they share.
	page := &fakePage{
		words: []model.Word{
			word("shared", 10, 100, 50, 112),
		},
	}
	ctx := NewPageContext(page)
	region := model.Region{
		Page: 0,
		Rects: []model.Rect{
			model.NewRect(5, 98, 55, 114),
			model.NewRect(8, 99, 52, 113),
		},
	}

	rc := NewReconstructor()
	text, _ := rc.Reconstruct(ctx, region)
	if text != "shared" {
		t.Errorf("expected single occurrence, got %q", text)
	}
}

func TestReconstruct_NoTextAnywhere(t *testing.T) {
	ctx := NewPageContext(&fakePage{})
	region := model.Region{Page: 0, Rects: []model.Rect{model.NewRect(0, 0, 10, 10)}}

	rc := NewReconstructor()
	text, method := rc.Reconstruct(ctx, region)
	if text != "" || method != "" {
		t.Errorf("expected empty result, got %q via %q", text, method)
	}
}

func TestReconstruct_CompletesClippedLastWord(t *testing.T) {
	// The sorted text ends in a fragment; the full word sits just outside
	// the region and should replace it.
	page := &fakePage{
		regionText: "we must underst",
		words: []model.Word{
			word("we", 10, 100, 24, 112),
			word("must", 30, 100, 58, 112),
			word("understand", 64, 100, 130, 112),
		},
	}
	ctx := NewPageContext(page)
	region := model.Region{Page: 0, Rects: []model.Rect{model.NewRect(10, 100, 100, 112)}}

	rc := NewReconstructor()
	text, _ := rc.Reconstruct(ctx, region)
	if text != "we must understand" {
		t.Errorf("fragment not completed: %q", text)
	}
}

func TestReconstruct_CompletionCanBeDisabled(t *testing.T) {
	page := &fakePage{
		regionText: "we must underst",
		words: []model.Word{
			word("understand", 64, 100, 130, 112),
		},
	}
	ctx := NewPageContext(page)
	region := model.Region{Page: 0, Rects: []model.Rect{model.NewRect(10, 100, 100, 112)}}

	cfg := DefaultConfig()
	cfg.CompleteBoundaryWords = false
	rc := NewReconstructorWithConfig(cfg)
	text, _ := rc.Reconstruct(ctx, region)
	if text != "we must underst" {
		t.Errorf("completion ran while disabled: %q", text)
	}
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := normalize("  a \n b\t\tc ")
	if got != "a b c" {
		t.Errorf("normalize(%q) = %q", "  a \n b\t\tc ", got)
	}
	if normalize("   ") != "" {
		t.Error("whitespace-only input should normalize to empty")
	}
}

func TestNewPageContext_IndexesWords(t *testing.T) {
	page := &fakePage{words: []model.Word{word("x", 0, 0, 10, 10)}}
	ctx := NewPageContext(page)
	if ctx.Index.Len() != 1 {
		t.Errorf("expected 1 indexed word, got %d", ctx.Index.Len())
	}
}

func TestReconstruct_MinOverlapRespected(t *testing.T) {
	// A word barely touching the quad must not be collected.
	page := &fakePage{
		words: []model.Word{
			word("inside", 10, 100, 60, 112),
			word("outside", 100, 100, 150, 112),
		},
	}
	ctx := NewPageContext(page)
	region := model.Region{
		Page: 0,
		// Covers "inside" fully, "outside" only by a sliver.
		Rects: []model.Rect{model.NewRect(10, 100, 105, 112)},
	}

	rc := NewReconstructor()
	text, _ := rc.Reconstruct(ctx, region)
	if strings.Contains(text, "outside") {
		t.Errorf("under-covered word included: %q", text)
	}
	if !strings.Contains(text, "inside") {
		t.Errorf("covered word missing: %q", text)
	}
}
