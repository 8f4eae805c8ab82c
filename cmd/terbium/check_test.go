package main

import (
	"testing"

	"terbium/internal/diag"
	"terbium/internal/diagfmt"
	"terbium/internal/source"
)

func tally(t *testing.T, bags ...*diag.Bag) string {
	t.Helper()
	all := diag.NewBag(0)
	for _, b := range bags {
		all.Merge(b)
	}
	return summarize(all)
}

func TestSummarizeCountsAcrossBags(t *testing.T) {
	first := diag.NewBag(4)
	first.Add(diag.New(diag.SevError, diag.Code{Num: 3, Error: true}, source.Span{}, "boom"))
	first.Add(diag.New(2, diag.Code{Num: 3}, source.Span{}, "meh"))
	second := diag.NewBag(4)
	second.Add(diag.New(2, diag.Code{Num: 4}, source.Span{}, "meh again"))

	if got := tally(t, first, second); got != "1 errors, 2 warnings" {
		t.Errorf("summarize = %q, want \"1 errors, 2 warnings\"", got)
	}
	if got := tally(t); got != "0 errors, 0 warnings" {
		t.Errorf("summarize of no results = %q", got)
	}
}

func TestDisplayPath(t *testing.T) {
	if got := displayPath("a/b/c.trb", diagfmt.PathModeBasename); got != "c.trb" {
		t.Errorf("basename displayPath = %q, want c.trb", got)
	}
	if got := displayPath("a/b/c.trb", diagfmt.PathModeFull); got != "a/b/c.trb" {
		t.Errorf("full displayPath = %q, want the path unchanged", got)
	}
}
