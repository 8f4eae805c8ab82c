package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"terbium/internal/sema"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "demo"

[analysis]
deny = ["unused-variables"]
warn_level = 3
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("package name = %q", m.Package.Name)
	}
	if len(m.Analysis.Deny) != 1 || m.Analysis.Deny[0] != "unused-variables" {
		t.Errorf("deny = %v", m.Analysis.Deny)
	}
	if m.Analysis.WarnLevel != 3 {
		t.Errorf("warn_level = %d", m.Analysis.WarnLevel)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package\nname =")
	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed TOML")
	}
}

func TestLoadRejectsWarnLevelOutOfRange(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[analysis]\nwarn_level = 9\n")
	if _, err := Load(path); err == nil {
		t.Error("Load should reject warn_level above the weakest tier")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "[package]\nname = \"demo\"\n")

	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != want {
		t.Errorf("Find = %s, want %s", got, want)
	}
}

func TestFindReportsMissingManifest(t *testing.T) {
	// A fresh temp dir has no manifest anywhere up to the filesystem root,
	// unless the environment running the tests planted one.
	_, err := Find(t.TempDir())
	if err == nil {
		t.Skip("a manifest exists above the temp dir")
	}
	if !errors.Is(err, ErrNoManifest) {
		t.Errorf("err = %v, want ErrNoManifest", err)
	}
}

func TestAnalyzerOptionsDefaults(t *testing.T) {
	opts, err := Manifest{}.AnalyzerOptions()
	if err != nil {
		t.Fatalf("AnalyzerOptions: %v", err)
	}
	if !opts.Analyzers.Contains(sema.UnusedVariables) || !opts.Analyzers.Contains(sema.UnresolvedIdentifiers) {
		t.Error("an empty manifest should enable every analyzer")
	}
	if opts.MinWarnLevel != 0 {
		t.Errorf("MinWarnLevel = %d, want 0", opts.MinWarnLevel)
	}
}

func TestAnalyzerOptionsDenyWins(t *testing.T) {
	m := Manifest{Analysis: AnalysisSection{
		Allow:     []string{"unused-variables"},
		Deny:      []string{"unused-variables", "non-snake-case"},
		WarnLevel: 2,
	}}
	opts, err := m.AnalyzerOptions()
	if err != nil {
		t.Fatalf("AnalyzerOptions: %v", err)
	}
	if opts.Analyzers.Contains(sema.UnusedVariables) {
		t.Error("deny should win over allow for the same analyzer")
	}
	if opts.Analyzers.Contains(sema.NonSnakeCase) {
		t.Error("denied analyzer still enabled")
	}
	if !opts.Analyzers.Contains(sema.GlobalMutableVariables) {
		t.Error("unlisted analyzers should stay enabled")
	}
	if opts.MinWarnLevel != 2 {
		t.Errorf("MinWarnLevel = %d, want 2", opts.MinWarnLevel)
	}
}

func TestAnalyzerOptionsRejectsUnknownNames(t *testing.T) {
	m := Manifest{Analysis: AnalysisSection{Deny: []string{"no-such-analyzer"}}}
	if _, err := m.AnalyzerOptions(); err == nil {
		t.Error("unknown analyzer names must not be silently ignored")
	}
}
