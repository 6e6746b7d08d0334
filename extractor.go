package pagemark

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/pagemark/pagemark/colors"
	"github.com/pagemark/pagemark/extract"
	"github.com/pagemark/pagemark/merge"
	"github.com/pagemark/pagemark/model"
	"github.com/pagemark/pagemark/reader"
)

// Extractor provides a fluent interface for extracting highlight and
// annotation records from PDF files. Each configuration method returns a
// new Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source
	filename string
	source   reader.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if source has been opened

	// Configuration
	options ExtractOptions
	config  Config
	log     *zap.Logger

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options. This ensures immutability: each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options.clone(),
		config:       e.config,
		log:          e.log,
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureSource opens the source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	src, err := reader.OpenDocument(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.source = src
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.source != nil {
		err := e.source.Close()
		e.source = nil
		e.sourceOpened = false
		e.ownsSource = false
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// Configuration methods
// ---------------------------------------------------------------------------

// Pages restricts extraction to the given 1-based page numbers.
// Out-of-range pages are reported as warnings, not errors.
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append([]int(nil), pages...)
	return newExt
}

// PageRange restricts extraction to the inclusive 1-based range [start, end].
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	if start < 1 || end < start {
		newExt.err = fmt.Errorf("invalid page range %d-%d", start, end)
		return newExt
	}
	nums := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		nums = append(nums, p)
	}
	newExt.options.pages = nums
	return newExt
}

// Colors keeps only records classified as one of the given colors.
func (e *Extractor) Colors(names ...colors.Name) *Extractor {
	newExt := e.clone()
	newExt.options.colorFilter = append([]colors.Name(nil), names...)
	return newExt
}

// KeepUnknown keeps highlight records whose color could not be classified.
// Without it, highlights outside the four canonical colors are dropped.
func (e *Extractor) KeepUnknown() *Extractor {
	newExt := e.clone()
	newExt.options.keepUnknown = true
	return newExt
}

// HighlightsOnly drops records for non-highlight markup annotations
// (notes, underlines, strikeouts).
func (e *Extractor) HighlightsOnly() *Extractor {
	newExt := e.clone()
	newExt.options.highlightsOnly = true
	return newExt
}

// WithConfig replaces the pipeline thresholds.
func (e *Extractor) WithConfig(cfg Config) *Extractor {
	newExt := e.clone()
	newExt.config = cfg
	return newExt
}

// WithLogger installs a logger for pipeline diagnostics.
func (e *Extractor) WithLogger(log *zap.Logger) *Extractor {
	newExt := e.clone()
	newExt.log = log
	return newExt
}

// ---------------------------------------------------------------------------
// Terminal operations
// ---------------------------------------------------------------------------

// PageCount returns the number of pages in the document.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	work := e.clone()
	if err := work.ensureSource(); err != nil {
		return 0, err
	}
	defer work.closeIfOwned(e)
	return work.source.PageCount(), nil
}

// Records runs the full extraction pipeline and returns the document's
// highlight and annotation records in display order, along with any
// non-fatal warnings.
func (e *Extractor) Records() ([]model.Record, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	work := e.clone()
	if err := work.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer work.closeIfOwned(e)

	log := work.log
	if log == nil {
		log = zap.NewNop()
	}

	rc := extract.NewReconstructorWithConfig(work.config.Extract)
	rc.SetLogger(log)

	var records []model.Record
	for _, pageNum := range work.resolvePages() {
		page, err := work.source.Page(pageNum - 1)
		if err != nil {
			work.warn(pageNum, err.Error())
			continue
		}
		records = append(records, work.processPage(rc, page, pageNum)...)
	}

	// Document-wide display order before the order-sensitive passes.
	sortRecords(records)

	merger := merge.NewHyphenMergerWithConfig(work.config.Merge)
	records = merger.Merge(records)

	dedup := merge.NewDeduplicatorWithConfig(work.config.Merge)
	records = dedup.Deduplicate(records)

	sortRecords(records)

	log.Info("extraction complete",
		zap.Int("records", len(records)),
		zap.Int("warnings", len(work.warnings)))

	return records, work.warnings, nil
}

// ---------------------------------------------------------------------------
// Pipeline internals
// ---------------------------------------------------------------------------

// processPage converts one page's markup annotations into records.
func (e *Extractor) processPage(rc *extract.Reconstructor, page reader.Page, pageNum int) []model.Record {
	annots := page.Annotations()
	if len(annots) == 0 {
		return nil
	}

	ctx := extract.NewPageContext(page)

	var records []model.Record
	for _, a := range annots {
		if !a.Type.Markup() {
			continue
		}
		records = append(records, e.processAnnotation(rc, ctx, a, pageNum)...)
	}
	return records
}

// processAnnotation produces up to two records for one markup annotation:
// an annotation record carrying its note or covered text, and, for
// background highlights, a highlight record with the fully reconstructed
// text. Overlapping pairs are collapsed later by the deduplicator.
func (e *Extractor) processAnnotation(rc *extract.Reconstructor, ctx *extract.PageContext, a reader.Annotation, pageNum int) []model.Record {
	region := a.Region(pageNum)
	color := colors.ClassifySample(region.Fill, region.Stroke)
	bounds := region.Bounds()

	var records []model.Record

	if !e.options.highlightsOnly && e.options.wantAnnotation(color) {
		text := a.Contents
		if text == "" {
			text = ctx.Page.TextInRegion(bounds.Expand(1, 1), true)
		}
		if text != "" {
			records = append(records, model.Record{
				Page:     pageNum,
				Text:     text,
				Color:    color,
				Category: model.CategoryAnnotation,
				Y0:       bounds.Y0,
				X0:       bounds.X0,
			})
		}
	}

	if a.Type == reader.Highlight && e.options.wantHighlight(color) {
		text, method := rc.Reconstruct(ctx, region)
		if text != "" {
			records = append(records, model.Record{
				Page:     pageNum,
				Text:     text,
				Color:    color,
				Category: model.CategoryHighlight,
				Y0:       bounds.Y0,
				X0:       bounds.X0,
				Method:   string(method),
			})
		}
	}

	return records
}

// resolvePages returns the 1-based page numbers to process, honoring the
// page selection and dropping out-of-range requests with a warning.
func (e *Extractor) resolvePages() []int {
	total := e.source.PageCount()

	if e.options.pages == nil {
		all := make([]int, total)
		for i := range all {
			all[i] = i + 1
		}
		return all
	}

	var pages []int
	seen := make(map[int]bool)
	for _, p := range e.options.pages {
		if p < 1 || p > total {
			e.warn(0, fmt.Sprintf("page %d out of range (document has %d pages)", p, total))
			continue
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// closeIfOwned closes the working copy's source unless it was inherited
// from orig, whose caller controls the lifecycle.
func (e *Extractor) closeIfOwned(orig *Extractor) {
	if !orig.sourceOpened {
		e.Close()
	}
}

func (e *Extractor) warn(page int, msg string) {
	e.warnings = append(e.warnings, Warning{Page: page, Message: msg})
}

// sortRecords applies the stable document-wide display order.
func sortRecords(records []model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Page != records[j].Page {
			return records[i].Page < records[j].Page
		}
		return records[i].Y0 < records[j].Y0
	})
}
