package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"terbium/internal/diag"
	"terbium/internal/source"
)

// Pretty renders every diagnostic in the bag in report order. For each
// diagnostic it prints the headline, the primary location, one annotated
// source excerpt per label, then help and the error-index link.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for i, d := range bag.Items() {
		if i > 0 {
			if err := p.line(""); err != nil {
				return err
			}
		}
		if err := p.diagnostic(d); err != nil {
			return err
		}
	}
	return nil
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

func (p *prettyPrinter) diagnostic(d diag.Diagnostic) error {
	sev := p.paint(d.Severity, d.Severity.String())
	code := p.paint(d.Severity, "["+d.Code.String()+"]")
	if err := p.line("%s%s: %s", sev, code, d.Message); err != nil {
		return err
	}

	start, _ := p.fs.Resolve(d.Primary)
	if err := p.line("  --> %s:%d:%d", p.path(d.Primary.File), start.Line, start.Col); err != nil {
		return err
	}

	labels := d.Labels
	if len(labels) == 0 {
		labels = []diag.Label{{Span: d.Primary, Emphasis: true}}
	}
	for _, l := range labels {
		if err := p.label(d.Severity, l); err != nil {
			return err
		}
	}

	if p.opts.ShowHelp {
		if d.Help != "" {
			if err := p.line("  = help: %s", d.Help); err != nil {
				return err
			}
		}
		if err := p.line("  = see: %s", d.Code.DocLink()); err != nil {
			return err
		}
	}
	return nil
}

// label prints the source line under the label span with a caret run
// aligned by display width, so wide runes do not skew the underline.
func (p *prettyPrinter) label(sev diag.Severity, l diag.Label) error {
	start, end := p.fs.Resolve(l.Span)
	file := p.fs.Get(l.Span.File)
	text := file.GetLine(start.Line)

	gutter := fmt.Sprintf("%4d", start.Line)
	if err := p.line("%s | %s", gutter, text); err != nil {
		return err
	}

	lead := prefixWidth(text, int(start.Col)-1)
	span := 1
	if end.Line == start.Line && end.Col > start.Col {
		span = prefixWidth(text, int(end.Col)-1) - lead
	}
	marker := strings.Repeat(" ", lead) + "^" + strings.Repeat("~", max(span-1, 0))

	painted := marker
	if l.Emphasis {
		painted = p.paint(sev, marker)
	} else if p.opts.Color {
		painted = color.New(color.FgCyan).Sprint(marker)
	}
	if l.Msg != "" {
		painted += " " + l.Msg
	}
	return p.line("     | %s", painted)
}

// prefixWidth is the display width of the first n bytes of the line.
func prefixWidth(text string, n int) int {
	if n < 0 {
		return 0
	}
	if n > len(text) {
		n = len(text)
	}
	return runewidth.StringWidth(text[:n])
}

func (p *prettyPrinter) paint(sev diag.Severity, s string) string {
	if !p.opts.Color {
		return s
	}
	if sev.IsError() {
		return color.New(color.FgRed, color.Bold).Sprint(s)
	}
	return color.New(color.FgYellow, color.Bold).Sprint(s)
}

func (p *prettyPrinter) path(id source.FileID) string {
	f := p.fs.Get(id)
	if p.opts.PathMode == PathModeBasename {
		return filepath.Base(f.Path)
	}
	return f.Path
}
