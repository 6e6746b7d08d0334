package extract

import (
	"testing"

	"github.com/pagemark/pagemark/layout"
	"github.com/pagemark/pagemark/model"
)

func TestIsLikelyPartial(t *testing.T) {
	partial := []string{
		"un",          // too short
		"trans-",      // trailing hyphen
		"underst",     // consonant cluster ending
		"resear,",     // stray punctuation after letters
		"streng",      // cluster ending
	}
	for _, tok := range partial {
		if !isLikelyPartial(tok) {
			t.Errorf("%q should look partial", tok)
		}
	}

	complete := []string{
		"the", "and", "of", "a", // common short words
		"running", "walked", "statement", // complete suffixes
		"house", "natural", "line",
	}
	for _, tok := range complete {
		if isLikelyPartial(tok) {
			t.Errorf("%q should look complete", tok)
		}
	}
}

func TestComplete_LastTokenPrefixMatch(t *testing.T) {
	words := []model.Word{
		{Rect: model.NewRect(10, 100, 80, 112), Text: "international"},
		{Rect: model.NewRect(90, 100, 120, 112), Text: "internet"},
	}
	idx := layout.NewWordIndex(words)
	region := model.NewRect(0, 100, 60, 112)

	c := NewCompleter()
	got := c.Complete("new internati", idx, region)
	if got != "new international" {
		t.Errorf("Complete = %q", got)
	}
}

func TestComplete_FirstTokenSuffixMatch(t *testing.T) {
	words := []model.Word{
		{Rect: model.NewRect(10, 100, 80, 112), Text: "understand"},
	}
	idx := layout.NewWordIndex(words)
	region := model.NewRect(30, 100, 120, 112)

	c := NewCompleter()
	got := c.Complete("stand the idea", idx, region)
	if got != "understand the idea" {
		t.Errorf("Complete = %q", got)
	}
}

func TestComplete_PicksLongestCandidate(t *testing.T) {
	words := []model.Word{
		{Rect: model.NewRect(10, 100, 50, 112), Text: "process"},
		{Rect: model.NewRect(60, 100, 120, 112), Text: "processing"},
	}
	idx := layout.NewWordIndex(words)
	region := model.NewRect(0, 100, 130, 112)

	c := NewCompleter()
	got := c.Complete("data proc,", idx, region)
	if got != "data processing" {
		t.Errorf("Complete = %q", got)
	}
}

func TestComplete_InteriorTokensUntouched(t *testing.T) {
	words := []model.Word{
		{Rect: model.NewRect(10, 100, 80, 112), Text: "production"},
	}
	idx := layout.NewWordIndex(words)
	region := model.NewRect(0, 100, 100, 112)

	c := NewCompleter()
	// "prod" appears in the middle; only boundary tokens are candidates.
	got := c.Complete("the prod line runs", idx, region)
	if got != "the prod line runs" {
		t.Errorf("interior token modified: %q", got)
	}
}

func TestComplete_NoCandidates(t *testing.T) {
	idx := layout.NewWordIndex(nil)
	c := NewCompleter()
	got := c.Complete("underst", idx, model.NewRect(0, 0, 10, 10))
	if got != "underst" {
		t.Errorf("expected input unchanged, got %q", got)
	}
}

func TestComplete_SingleTokenReplacedOnce(t *testing.T) {
	words := []model.Word{
		{Rect: model.NewRect(10, 100, 80, 112), Text: "understand"},
	}
	idx := layout.NewWordIndex(words)
	region := model.NewRect(0, 100, 100, 112)

	c := NewCompleter()
	got := c.Complete("derstand", idx, region)
	if got != "understand" {
		t.Errorf("Complete = %q", got)
	}
}

func TestComplete_CandidateMustBeLonger(t *testing.T) {
	words := []model.Word{
		{Rect: model.NewRect(10, 100, 80, 112), Text: "underst"},
	}
	idx := layout.NewWordIndex(words)
	region := model.NewRect(0, 100, 100, 112)

	c := NewCompleter()
	got := c.Complete("we underst", idx, region)
	if got != "we underst" {
		t.Errorf("equal-length candidate accepted: %q", got)
	}
}
