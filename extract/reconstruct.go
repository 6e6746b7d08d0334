package extract

import (
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/pagemark/pagemark/layout"
	"github.com/pagemark/pagemark/model"
	"github.com/pagemark/pagemark/reader"
)

// Method identifies which reconstruction strategy produced a result.
type Method string

const (
	// MethodSorted is direct region extraction with reading-order sorting.
	MethodSorted Method = "sorted"

	// MethodBlocks assembles text from coarse blocks overlapping an
	// expanded region.
	MethodBlocks Method = "blocks"

	// MethodWords collects individual words quad by quad.
	MethodWords Method = "words"
)

// Config holds the tunable parameters of the reconstruction engine.
type Config struct {
	// ExpandX and ExpandY grow the region before the block strategy runs,
	// in points per side.
	ExpandX float64 `yaml:"expand_x"`
	ExpandY float64 `yaml:"expand_y"`

	// MinOverlap is the fraction of a word's area that must fall inside
	// the region for the word to count as covered.
	MinOverlap float64 `yaml:"min_overlap"`

	// CompleteBoundaryWords enables repair of words clipped at the region
	// edge.
	CompleteBoundaryWords bool `yaml:"complete_boundary_words"`

	// Cluster configures line grouping for the word strategy.
	Cluster layout.ClusterConfig `yaml:"cluster"`
}

// DefaultConfig returns the reconstruction parameters that work well for
// common page layouts.
func DefaultConfig() Config {
	return Config{
		ExpandX:               2,
		ExpandY:               1,
		MinOverlap:            layout.DefaultMinOverlap,
		CompleteBoundaryWords: true,
		Cluster:               layout.DefaultClusterConfig(),
	}
}

// PageContext bundles a page with the word index built over it. Building
// the index once per page keeps repeated annotation lookups cheap.
type PageContext struct {
	Page  reader.Page
	Index *layout.WordIndex
}

// NewPageContext indexes the page's words for region queries.
func NewPageContext(p reader.Page) *PageContext {
	return &PageContext{
		Page:  p,
		Index: layout.NewWordIndex(p.Words()),
	}
}

// Reconstructor rebuilds the text covered by annotation regions.
type Reconstructor struct {
	cfg       Config
	clusterer *layout.LineClusterer
	completer *Completer
	log       *zap.Logger
}

// NewReconstructor returns a Reconstructor with default parameters.
func NewReconstructor() *Reconstructor {
	return NewReconstructorWithConfig(DefaultConfig())
}

// NewReconstructorWithConfig returns a Reconstructor with the given
// parameters.
func NewReconstructorWithConfig(cfg Config) *Reconstructor {
	if cfg.MinOverlap <= 0 {
		cfg.MinOverlap = layout.DefaultMinOverlap
	}
	return &Reconstructor{
		cfg:       cfg,
		clusterer: layout.NewLineClustererWithConfig(cfg.Cluster),
		completer: NewCompleter(),
		log:       zap.NewNop(),
	}
}

// SetLogger installs a logger for per-annotation diagnostics.
func (rc *Reconstructor) SetLogger(log *zap.Logger) {
	if log != nil {
		rc.log = log
	}
}

// Reconstruct returns the text covered by the region and the strategy
// that produced it. An empty string means no strategy found any text.
func (rc *Reconstructor) Reconstruct(ctx *PageContext, region model.Region) (string, Method) {
	bounds := region.Bounds()

	text := rc.sortedText(ctx, bounds)
	method := MethodSorted
	if text == "" {
		text = rc.blockText(ctx, bounds)
		method = MethodBlocks
	}
	if text == "" {
		text = rc.wordText(ctx, region)
		method = MethodWords
	}
	if text == "" {
		return "", ""
	}

	if rc.cfg.CompleteBoundaryWords {
		text = rc.completer.Complete(text, ctx.Index, bounds)
	}

	rc.log.Debug("reconstructed region",
		zap.Int("page", region.Page),
		zap.String("method", string(method)),
		zap.Int("chars", len(text)))

	return text, method
}

// sortedText extracts the expanded region's text directly, in reading
// order. Expansion admits boundary words whose glyph box only marginally
// crosses the highlight edge; every strategy applies it.
func (rc *Reconstructor) sortedText(ctx *PageContext, bounds model.Rect) string {
	expanded := bounds.Expand(rc.cfg.ExpandX, rc.cfg.ExpandY)
	return normalize(ctx.Page.TextInRegion(expanded, true))
}

// blockText gathers coarse text blocks around the expanded region.
func (rc *Reconstructor) blockText(ctx *PageContext, bounds model.Rect) string {
	expanded := bounds.Expand(rc.cfg.ExpandX, rc.cfg.ExpandY)
	blocks := ctx.Page.TextBlocks(expanded)
	if len(blocks) == 0 {
		return ""
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].Rect.Y0 != blocks[j].Rect.Y0 {
			return blocks[i].Rect.Y0 < blocks[j].Rect.Y0
		}
		return blocks[i].Rect.X0 < blocks[j].Rect.X0
	})

	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	return normalize(strings.Join(parts, " "))
}

// wordText collects covered words quad by quad. Duplicate words picked up
// by overlapping quads are dropped by position.
func (rc *Reconstructor) wordText(ctx *PageContext, region model.Region) string {
	type wordKey struct {
		text   string
		x0, y0 float64
	}
	seen := make(map[wordKey]bool)

	var collected []model.Word
	for _, quad := range region.Rects {
		expanded := quad.Expand(rc.cfg.ExpandX, rc.cfg.ExpandY)
		for _, w := range ctx.Index.Overlapping(expanded, rc.cfg.MinOverlap) {
			key := wordKey{w.Text, w.Rect.X0, w.Rect.Y0}
			if seen[key] {
				continue
			}
			seen[key] = true
			collected = append(collected, w)
		}
	}
	if len(collected) == 0 {
		return ""
	}

	ordered := layout.Flatten(rc.clusterer.Cluster(collected))
	parts := make([]string, 0, len(ordered))
	for _, w := range ordered {
		parts = append(parts, w.Text)
	}
	return normalize(strings.Join(parts, " "))
}

// normalize collapses runs of whitespace and applies NFC so visually
// identical extractions compare equal during deduplication.
func normalize(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return norm.NFC.String(strings.Join(fields, " "))
}
