package layout

import (
	"math"
	"sort"

	"github.com/pagemark/pagemark/model"
)

// ClusterConfig holds configuration for line clustering.
type ClusterConfig struct {
	// LineTolerance is the maximum distance between a word's vertical center
	// and a line's running mean center for the word to join that line
	// (default: 5 page units).
	LineTolerance float64 `yaml:"line_tolerance"`
}

// DefaultClusterConfig returns sensible default configuration.
func DefaultClusterConfig() ClusterConfig {
	return ClusterConfig{
		LineTolerance: 5.0,
	}
}

// LineClusterer groups words into horizontal lines.
type LineClusterer struct {
	config ClusterConfig
}

// NewLineClusterer creates a line clusterer with default configuration.
func NewLineClusterer() *LineClusterer {
	return &LineClusterer{
		config: DefaultClusterConfig(),
	}
}

// NewLineClustererWithConfig creates a line clusterer with custom configuration.
func NewLineClustererWithConfig(config ClusterConfig) *LineClusterer {
	return &LineClusterer{
		config: config,
	}
}

// Cluster groups the words into lines and returns them in reading order:
// lines sorted top to bottom by mean vertical center, words within each line
// sorted left to right by horizontal center.
//
// Placement is greedy first-fit in input order: each word joins the first
// existing line whose running mean vertical center lies within the tolerance,
// otherwise it starts a new line. For unambiguous inputs the resulting line
// contents are independent of input order; near-tolerance ties are resolved
// by insertion order.
func (c *LineClusterer) Cluster(words []model.Word) [][]model.Word {
	if len(words) == 0 {
		return nil
	}

	var lines [][]model.Word
	for _, w := range words {
		center := w.Rect.CenterY()
		placed := false
		for i := range lines {
			if math.Abs(center-meanCenterY(lines[i])) <= c.config.LineTolerance {
				lines[i] = append(lines[i], w)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, []model.Word{w})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return meanCenterY(lines[i]) < meanCenterY(lines[j])
	})

	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].Rect.CenterX() < line[j].Rect.CenterX()
		})
	}

	return lines
}

// Flatten concatenates clustered lines back into a single reading-order
// word sequence.
func Flatten(lines [][]model.Word) []model.Word {
	var out []model.Word
	for _, line := range lines {
		out = append(out, line...)
	}
	return out
}

// meanCenterY returns the mean vertical center of the words in a line.
func meanCenterY(line []model.Word) float64 {
	if len(line) == 0 {
		return 0
	}
	total := 0.0
	for _, w := range line {
		total += w.Rect.CenterY()
	}
	return total / float64(len(line))
}
