package sema

import "terbium/internal/diag"

// Options configures one analysis run. It is passed explicitly; the
// walker keeps no ambient state.
type Options struct {
	Analyzers Set
	// MinWarnLevel drops warnings below the given tier. 0 keeps all.
	// Errors always pass.
	MinWarnLevel diag.Severity
	// MaxDiagnostics caps the bag. 0 means DefaultMaxDiagnostics.
	MaxDiagnostics int
}

// DefaultMaxDiagnostics bounds runaway inputs without truncating any
// realistic report.
const DefaultMaxDiagnostics = 256

// DefaultOptions enables every analyzer and keeps every warning.
func DefaultOptions() Options {
	return Options{
		Analyzers:      AllAnalyzers(),
		MaxDiagnostics: DefaultMaxDiagnostics,
	}
}
