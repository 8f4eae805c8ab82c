// Package project locates and parses terbium.toml manifests.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"terbium/internal/diag"
	"terbium/internal/sema"
)

// ManifestName is the project manifest file name.
const ManifestName = "terbium.toml"

// ErrNoManifest indicates no terbium.toml was found walking up from the
// start directory.
var ErrNoManifest = errors.New("no terbium.toml found")

// Manifest is the parsed project configuration.
type Manifest struct {
	Package  PackageSection  `toml:"package"`
	Analysis AnalysisSection `toml:"analysis"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name string `toml:"name"`
}

// AnalysisSection is the [analysis] table. Allow and Deny hold analyzer
// string forms; deny wins when both name the same analyzer. WarnLevel
// drops warnings below the given tier (0 keeps all).
type AnalysisSection struct {
	Allow     []string `toml:"allow"`
	Deny      []string `toml:"deny"`
	WarnLevel uint8    `toml:"warn_level"`
}

// Load parses the manifest at path.
func Load(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if m.Analysis.WarnLevel > uint8(diag.MaxWarnLevel) {
		return Manifest{}, fmt.Errorf("%s: warn_level must be 0..%d", path, diag.MaxWarnLevel)
	}
	return m, nil
}

// Find walks from dir upward to the filesystem root looking for the
// manifest, returning its path.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(abs, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNoManifest
		}
		abs = parent
	}
}

// AnalyzerOptions lowers the manifest into walker options. Unknown
// analyzer names are an error so typos do not silently enable everything.
func (m Manifest) AnalyzerOptions() (sema.Options, error) {
	allowed, err := parseKinds(m.Analysis.Allow)
	if err != nil {
		return sema.Options{}, err
	}
	disabled, err := parseKinds(m.Analysis.Deny)
	if err != nil {
		return sema.Options{}, err
	}

	opts := sema.DefaultOptions()
	if len(allowed) > 0 || len(disabled) > 0 {
		opts.Analyzers = sema.FromAllowedDisabled(allowed, disabled)
	}
	opts.MinWarnLevel = diag.Severity(m.Analysis.WarnLevel)
	return opts, nil
}

func parseKinds(names []string) ([]sema.Kind, error) {
	kinds := make([]sema.Kind, 0, len(names))
	for _, name := range names {
		k, err := sema.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
