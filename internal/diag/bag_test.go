package diag

import (
	"testing"

	"terbium/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagAddRespectsCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(New(1, WarnCode(0), span(1, 0, 1), "first")) {
		t.Fatal("first Add should succeed")
	}
	if !b.Add(New(1, WarnCode(0), span(1, 1, 2), "second")) {
		t.Fatal("second Add should succeed")
	}
	if b.Add(New(1, WarnCode(0), span(1, 2, 3), "third")) {
		t.Error("Add past the cap should report false")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	b := NewBag(8)
	if b.HasErrors() || b.HasWarnings() {
		t.Error("empty bag reports content")
	}

	b.Add(New(2, WarnCode(3), span(1, 0, 1), "a warning"))
	if b.HasErrors() {
		t.Error("warning-only bag reports errors")
	}
	if !b.HasWarnings() {
		t.Error("HasWarnings missed the warning")
	}

	b.Add(NewError(ErrCode(1), span(1, 2, 3), "an error"))
	if !b.HasErrors() {
		t.Error("HasErrors missed the error")
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(New(1, WarnCode(0), span(1, 0, 1), "a"))

	b := NewBag(2)
	b.Add(New(1, WarnCode(1), span(1, 1, 2), "b1"))
	b.Add(New(1, WarnCode(2), span(1, 2, 3), "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("Len after merge = %d, want 3", a.Len())
	}
	// The merged bag still accepts more once the cap grew.
	if a.Cap() < 3 {
		t.Errorf("Cap after merge = %d, want at least 3", a.Cap())
	}
}

func TestBagSortOrder(t *testing.T) {
	b := NewBag(8)
	b.Add(New(2, WarnCode(3), span(2, 0, 1), "other file"))
	b.Add(New(2, WarnCode(3), span(1, 10, 12), "later span"))
	b.Add(New(2, WarnCode(3), span(1, 4, 8), "earlier span"))
	b.Add(NewError(ErrCode(1), span(1, 4, 8), "error at same span"))

	b.Sort()
	items := b.Items()
	if items[0].Message != "error at same span" {
		t.Errorf("items[0] = %q, want the error first at equal spans", items[0].Message)
	}
	if items[1].Message != "earlier span" || items[2].Message != "later span" {
		t.Errorf("span order wrong: %q, %q", items[1].Message, items[2].Message)
	}
	if items[3].Message != "other file" {
		t.Errorf("items[3] = %q, want the higher file last", items[3].Message)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(8)
	b.Add(New(2, WarnCode(3), span(1, 0, 4), "kept"))
	b.Add(New(2, WarnCode(3), span(1, 0, 4), "dropped duplicate"))
	b.Add(New(2, WarnCode(4), span(1, 0, 4), "different code kept"))
	b.Add(New(2, WarnCode(3), span(1, 5, 9), "different span kept"))

	b.Dedup()
	if b.Len() != 3 {
		t.Fatalf("Len after dedup = %d, want 3", b.Len())
	}
	if b.Items()[0].Message != "kept" {
		t.Errorf("dedup kept the wrong diagnostic: %q", b.Items()[0].Message)
	}
}

func TestDiagnosticBuilders(t *testing.T) {
	d := NewError(ErrCode(4), span(1, 0, 3), "bad operator").
		WithLabel(span(1, 0, 1), "left side").
		WithEmphasis(span(1, 2, 3), "right side").
		WithHelp("try casting")

	if len(d.Labels) != 2 {
		t.Fatalf("labels = %d, want 2", len(d.Labels))
	}
	if d.Labels[0].Emphasis || !d.Labels[1].Emphasis {
		t.Error("emphasis flags wrong way round")
	}
	if d.Help != "try casting" {
		t.Errorf("help = %q", d.Help)
	}
	if !d.Severity.IsError() {
		t.Error("NewError should build an error-tier diagnostic")
	}
}

func TestCodeStrings(t *testing.T) {
	if got := WarnCode(0).String(); got != "W000" {
		t.Errorf("WarnCode(0) = %s, want W000", got)
	}
	if got := ErrCode(1).String(); got != "E001" {
		t.Errorf("ErrCode(1) = %s, want E001", got)
	}
	if got := WarnCode(6).DocLink(); got != "https://github.com/TerbiumLang/standard/blob/main/error_index.md#W006" {
		t.Errorf("DocLink = %s", got)
	}
}

func TestSeverityTiers(t *testing.T) {
	if !SevError.IsError() || SevError.IsWarning() {
		t.Error("SevError misclassified")
	}
	for s := Severity(1); s <= MaxWarnLevel; s++ {
		if !s.IsWarning() || s.IsError() {
			t.Errorf("severity %d misclassified", s)
		}
	}
	if Severity(6).IsWarning() {
		t.Error("severity above MaxWarnLevel is not a warning")
	}
	if SevError.String() != "ERROR" || Severity(3).String() != "WARNING" {
		t.Error("severity strings wrong")
	}
}
