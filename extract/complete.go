package extract

import (
	"strings"
	"unicode"

	"github.com/pagemark/pagemark/layout"
	"github.com/pagemark/pagemark/model"
)

// Completion search window around the region, in points per side.
const (
	completeWindowX = 50
	completeWindowY = 5
)

// completeWords never count as clipped fragments even when short.
var completeWords = map[string]bool{
	"the": true, "and": true, "of": true, "to": true, "in": true,
	"for": true, "with": true, "a": true, "an": true, "is": true,
	"are": true, "was": true, "were": true,
}

// partialEndings are consonant clusters that rarely end an English word;
// a longer token ending in one of these is likely clipped.
var partialEndings = []string{
	"th", "st", "nd", "rd", "ch", "sh", "nt", "mp", "ck", "ng",
}

// completeSuffixes mark a token as a finished word even when it ends in a
// cluster from partialEndings.
var completeSuffixes = []string{
	"ed", "ing", "er", "est", "ly", "ion", "tion", "ment", "ness",
	"ful", "less", "able", "ible",
}

// Completer repairs words clipped at a region boundary by matching the
// fragment against full words found near the region.
type Completer struct{}

// NewCompleter returns a Completer.
func NewCompleter() *Completer {
	return &Completer{}
}

// Complete examines the first and last token of text and, when a token
// looks like a fragment, replaces it with a matching full word from the
// neighborhood of the region. Interior tokens are never touched.
func (c *Completer) Complete(text string, idx *layout.WordIndex, region model.Rect) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return text
	}

	first := tokens[0]
	last := tokens[len(tokens)-1]
	firstPartial := isLikelyPartial(first)
	lastPartial := isLikelyPartial(last)
	if !firstPartial && !lastPartial {
		return text
	}

	neighborhood := region.Expand(completeWindowX, completeWindowY)
	candidates := idx.Intersecting(neighborhood)
	if len(candidates) == 0 {
		return text
	}

	if firstPartial {
		if full := bestSuffixMatch(first, candidates); full != "" {
			tokens[0] = full
			// A single clipped token must not be replaced twice.
			if len(tokens) == 1 {
				return strings.Join(tokens, " ")
			}
		}
	}
	if lastPartial {
		if full := bestPrefixMatch(last, candidates); full != "" {
			tokens[len(tokens)-1] = full
		}
	}
	return strings.Join(tokens, " ")
}

// isLikelyPartial reports whether a token looks like a clipped word
// fragment rather than a complete word.
func isLikelyPartial(token string) bool {
	trimmed := trimFragment(token)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)

	if completeWords[lower] {
		return false
	}

	runes := []rune(lower)
	if len(runes) < 3 {
		return true
	}
	if strings.HasSuffix(lower, "-") {
		return true
	}

	// Letters followed by a stray non-letter usually mean the extractor
	// cut through a word.
	raw := []rune(token)
	lastRaw := raw[len(raw)-1]
	if !unicode.IsLetter(lastRaw) && !unicode.IsDigit(lastRaw) && lastRaw != '-' && hasLetter(raw[:len(raw)-1]) {
		return true
	}

	if len(runes) >= 4 {
		for _, suffix := range completeSuffixes {
			if strings.HasSuffix(lower, suffix) {
				return false
			}
		}
		for _, ending := range partialEndings {
			if strings.HasSuffix(lower, ending) {
				return true
			}
		}
	}
	return false
}

// trimFragment strips punctuation from both ends of a token, keeping
// letters, digits and hyphens.
func trimFragment(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
}

func hasLetter(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// bestSuffixMatch finds the longest nearby word that ends with the
// fragment. The match must be strictly longer than the fragment.
func bestSuffixMatch(fragment string, candidates []model.Word) string {
	frag := strings.ToLower(strings.Trim(trimFragment(fragment), "-"))
	if frag == "" {
		return ""
	}

	var best string
	for _, w := range candidates {
		cand := strings.ToLower(w.Text)
		if len(cand) <= len(frag) {
			continue
		}
		if strings.HasSuffix(cand, frag) && len(w.Text) > len(best) {
			best = w.Text
		}
	}
	return best
}

// bestPrefixMatch finds the longest nearby word that starts with the
// fragment.
func bestPrefixMatch(fragment string, candidates []model.Word) string {
	frag := strings.ToLower(strings.Trim(trimFragment(fragment), "-"))
	if frag == "" {
		return ""
	}

	var best string
	for _, w := range candidates {
		cand := strings.ToLower(w.Text)
		if len(cand) <= len(frag) {
			continue
		}
		if strings.HasPrefix(cand, frag) && len(w.Text) > len(best) {
			best = w.Text
		}
	}
	return best
}
