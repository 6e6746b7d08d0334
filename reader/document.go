package reader

import (
	"fmt"
	"os"
	"strings"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/pagemark/pagemark/layout"
	"github.com/pagemark/pagemark/model"
)

// defaultPageHeight is used when a page carries no resolvable MediaBox
// (US Letter in points).
const defaultPageHeight = 792.0

// Document is a Source backed by github.com/ledongthuc/pdf.
type Document struct {
	file   *os.File
	reader *lpdf.Reader
}

// OpenDocument opens a PDF file for extraction. The returned Document must
// be closed when done.
func OpenDocument(path string) (*Document, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Document{file: f, reader: r}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// Close releases the underlying file. Safe to call multiple times.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// Page loads the page with the given 0-based index. The page's words and
// annotations are extracted eagerly so later queries are pure in-memory
// operations.
func (d *Document) Page(n int) (Page, error) {
	if n < 0 || n >= d.reader.NumPage() {
		return nil, fmt.Errorf("page %d out of range (0-%d)", n, d.reader.NumPage()-1)
	}

	p := d.reader.Page(n + 1)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d: missing page object", n+1)
	}

	height := pageHeight(p)
	words := assembleWords(p.Content().Text, height)

	dp := &documentPage{
		words:     words,
		annots:    readAnnotations(p, height),
		index:     layout.NewWordIndex(words),
		clusterer: layout.NewLineClusterer(),
	}
	return dp, nil
}

// pageHeight resolves the page's MediaBox height, climbing the page tree
// for inherited values.
func pageHeight(p lpdf.Page) float64 {
	v := p.V
	for i := 0; i < 16 && !v.IsNull(); i++ {
		box := v.Key("MediaBox")
		if !box.IsNull() && box.Kind() == lpdf.Array && box.Len() >= 4 {
			y0 := box.Index(1).Float64()
			y1 := box.Index(3).Float64()
			if h := y1 - y0; h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}

// readAnnotations walks the page's Annots array. Malformed entries are
// skipped; a page without annotations yields nil.
func readAnnotations(p lpdf.Page, height float64) []Annotation {
	annots := p.V.Key("Annots")
	if annots.IsNull() || annots.Kind() != lpdf.Array {
		return nil
	}

	var out []Annotation
	for i := 0; i < annots.Len(); i++ {
		v := annots.Index(i)
		if v.IsNull() || v.Kind() != lpdf.Dict {
			continue
		}

		subtype := v.Key("Subtype")
		if subtype.IsNull() {
			continue
		}

		a := Annotation{
			Type:     AnnotationType(subtype.Name()),
			Contents: strings.TrimSpace(v.Key("Contents").Text()),
			Stroke:   colorChannels(v.Key("C")),
			Fill:     colorChannels(v.Key("IC")),
		}

		rect, ok := annotRect(v.Key("Rect"), height)
		if !ok {
			continue
		}
		a.Rect = rect
		a.Quads = quadRects(v.Key("QuadPoints"), height)

		out = append(out, a)
	}
	return out
}

// annotRect decodes a /Rect array, flipping into top-left coordinates.
func annotRect(v lpdf.Value, height float64) (model.Rect, bool) {
	if v.IsNull() || v.Kind() != lpdf.Array || v.Len() < 4 {
		return model.Rect{}, false
	}
	x0 := v.Index(0).Float64()
	y0 := v.Index(1).Float64()
	x1 := v.Index(2).Float64()
	y1 := v.Index(3).Float64()
	return model.NewRect(x0, height-y1, x1, height-y0), true
}

// quadRects decodes a /QuadPoints array into one rectangle per quad.
// Each quad is 8 numbers: four (x, y) corner points.
func quadRects(v lpdf.Value, height float64) []model.Rect {
	if v.IsNull() || v.Kind() != lpdf.Array || v.Len() < 8 {
		return nil
	}

	var rects []model.Rect
	for q := 0; q+8 <= v.Len(); q += 8 {
		minX := v.Index(q).Float64()
		maxX := minX
		minY := v.Index(q + 1).Float64()
		maxY := minY
		for j := 2; j < 8; j += 2 {
			x := v.Index(q + j).Float64()
			y := v.Index(q + j + 1).Float64()
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
		rects = append(rects, model.NewRect(minX, height-maxY, maxX, height-minY))
	}
	return rects
}

// colorChannels decodes a color array. Only RGB triples are passed through;
// single-channel gray values are replicated so the classifier can still run.
func colorChannels(v lpdf.Value) []float64 {
	if v.IsNull() || v.Kind() != lpdf.Array {
		return nil
	}
	switch v.Len() {
	case 1:
		g := v.Index(0).Float64()
		return []float64{g, g, g}
	case 3:
		return []float64{
			v.Index(0).Float64(),
			v.Index(1).Float64(),
			v.Index(2).Float64(),
		}
	}
	return nil
}

// documentPage holds one page's extracted data. All queries run against
// the words captured at load time.
type documentPage struct {
	words     []model.Word
	annots    []Annotation
	index     *layout.WordIndex
	clusterer *layout.LineClusterer
}

func (p *documentPage) Annotations() []Annotation {
	return p.annots
}

func (p *documentPage) Words() []model.Word {
	return p.words
}

// TextInRegion assembles the text of the words covered by the region.
// With sorted set, words are ordered by line clustering; otherwise they
// keep page storage order.
func (p *documentPage) TextInRegion(r model.Rect, sorted bool) string {
	words := p.index.Overlapping(r, layout.DefaultMinOverlap)
	if len(words) == 0 {
		return ""
	}
	if sorted {
		words = layout.Flatten(p.clusterer.Cluster(words))
	}
	return joinWords(words)
}

// TextBlocks returns one block per clustered line within the region.
func (p *documentPage) TextBlocks(r model.Rect) []Block {
	words := p.index.Overlapping(r, layout.DefaultMinOverlap)
	if len(words) == 0 {
		return nil
	}

	var blocks []Block
	for _, line := range p.clusterer.Cluster(words) {
		blocks = append(blocks, Block{
			Rect: model.WordsBounds(line),
			Text: joinWords(line),
		})
	}
	return blocks
}

func joinWords(words []model.Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.Text)
	}
	return strings.Join(parts, " ")
}
