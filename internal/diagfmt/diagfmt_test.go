package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"terbium/internal/diag"
	"terbium/internal/source"
)

func demoFileSet(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/demo.trb", []byte(content))
	return fs, id
}

func reassignBag(file source.FileID) *diag.Bag {
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.ErrCode(3), source.Span{File: file, Start: 11, End: 12}, "cannot reassign to immutable variable").
		WithLabel(source.Span{File: file, Start: 4, End: 5}, "declared here").
		WithEmphasis(source.Span{File: file, Start: 11, End: 12}, "reassigned here").
		WithHelp("make variable mutable by declaring with `let mut` instead"))
	return bag
}

func renderPretty(t *testing.T, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	return buf.String()
}

func wantLines(t *testing.T, out string, lines ...string) {
	t.Helper()
	got := strings.Split(out, "\n")
	seen := make(map[string]bool, len(got))
	for _, l := range got {
		seen[l] = true
	}
	for _, want := range lines {
		if !seen[want] {
			t.Errorf("output lacks line %q; got:\n%s", want, out)
		}
	}
}

func TestPrettyReport(t *testing.T) {
	fs, file := demoFileSet(t, "let x = 1;\nx = 2;\n")
	out := renderPretty(t, reassignBag(file), fs, PrettyOpts{ShowHelp: true})

	wantLines(t, out,
		"ERROR[E003]: cannot reassign to immutable variable",
		"  --> src/demo.trb:2:1",
		"   1 | let x = 1;",
		"     |     ^ declared here",
		"   2 | x = 2;",
		"     | ^ reassigned here",
		"  = help: make variable mutable by declaring with `let mut` instead",
		"  = see: https://github.com/TerbiumLang/standard/blob/main/error_index.md#E003",
	)
}

func TestPrettyCaretRunCoversSpan(t *testing.T) {
	fs, file := demoFileSet(t, "let x = 1;\n")
	bag := diag.NewBag(4)
	bag.Add(diag.New(2, diag.WarnCode(3), source.Span{File: file, Start: 0, End: 3}, "demo").
		WithEmphasis(source.Span{File: file, Start: 0, End: 3}, "the keyword"))

	out := renderPretty(t, bag, fs, PrettyOpts{})
	wantLines(t, out,
		"WARNING[W003]: demo",
		"     | ^~~ the keyword",
	)
}

func TestPrettyBasenamePaths(t *testing.T) {
	fs, file := demoFileSet(t, "let x = 1;\nx = 2;\n")
	out := renderPretty(t, reassignBag(file), fs, PrettyOpts{PathMode: PathModeBasename})
	wantLines(t, out, "  --> demo.trb:2:1")
	if strings.Contains(out, "src/demo.trb") {
		t.Error("basename mode leaked the full path")
	}
}

func TestPrettyWithoutHelp(t *testing.T) {
	fs, file := demoFileSet(t, "let x = 1;\nx = 2;\n")
	out := renderPretty(t, reassignBag(file), fs, PrettyOpts{ShowHelp: false})
	if strings.Contains(out, "= help:") || strings.Contains(out, "= see:") {
		t.Errorf("help lines rendered with ShowHelp off:\n%s", out)
	}
}

func TestPrettySeparatesDiagnostics(t *testing.T) {
	fs, file := demoFileSet(t, "let x = 1;\nx = 2;\n")
	bag := reassignBag(file)
	bag.Merge(reassignBag(file))

	out := renderPretty(t, bag, fs, PrettyOpts{})
	if got := strings.Count(out, "ERROR[E003]"); got != 2 {
		t.Fatalf("rendered %d headlines, want 2", got)
	}
	if !strings.Contains(out, "\n\nERROR[E003]") {
		t.Error("diagnostics are not separated by a blank line")
	}
}

func TestPrettyLabellessDiagnosticUnderlinesPrimary(t *testing.T) {
	fs, file := demoFileSet(t, "let x = 1;\n")
	bag := diag.NewBag(4)
	bag.Add(diag.New(1, diag.WarnCode(0), source.Span{File: file, Start: 4, End: 5}, "demo"))

	out := renderPretty(t, bag, fs, PrettyOpts{})
	wantLines(t, out, "     |     ^")
}

func TestJSONOutput(t *testing.T) {
	fs, file := demoFileSet(t, "let x = 1;\nx = 2;\n")
	var buf bytes.Buffer
	if err := JSON(&buf, reassignBag(file), fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.Code != "E003" || d.Severity != 0 {
		t.Errorf("code = %s, severity = %d", d.Code, d.Severity)
	}
	if d.Location.File != "src/demo.trb" || d.Location.StartByte != 11 || d.Location.EndByte != 12 {
		t.Errorf("location = %+v", d.Location)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 {
		t.Errorf("resolved position = %d:%d, want 2:1", d.Location.StartLine, d.Location.StartCol)
	}
	if len(d.Labels) != 2 || d.Labels[0].Message != "declared here" || !d.Labels[1].Emphasis {
		t.Errorf("labels = %+v", d.Labels)
	}
	if !strings.HasSuffix(d.DocLink, "#E003") {
		t.Errorf("doc link = %s", d.DocLink)
	}
}

func TestJSONOmitsPositionsUnlessAsked(t *testing.T) {
	fs, file := demoFileSet(t, "let x = 1;\nx = 2;\n")
	out := BuildDiagnosticsOutput(reassignBag(file), fs, JSONOpts{})
	if loc := out.Diagnostics[0].Location; loc.StartLine != 0 || loc.StartCol != 0 {
		t.Errorf("positions populated without IncludePositions: %+v", loc)
	}
}

func TestJSONMaxTruncatesOutputNotCount(t *testing.T) {
	fs, file := demoFileSet(t, "let x = 1;\nx = 2;\n")
	bag := reassignBag(file)
	bag.Merge(reassignBag(file))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if len(out.Diagnostics) != 1 {
		t.Errorf("diagnostics = %d, want 1", len(out.Diagnostics))
	}
	if out.Count != 2 {
		t.Errorf("count = %d, want the untruncated total 2", out.Count)
	}
}

func TestJSONBasenamePaths(t *testing.T) {
	fs, file := demoFileSet(t, "let x = 1;\nx = 2;\n")
	out := BuildDiagnosticsOutput(reassignBag(file), fs, JSONOpts{PathMode: PathModeBasename})
	if got := out.Diagnostics[0].Location.File; got != "demo.trb" {
		t.Errorf("file = %s, want demo.trb", got)
	}
}
