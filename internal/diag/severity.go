package diag

// Severity is a numeric tier: 0 is an error, 1 through 5 are warnings
// where a higher number means a more severe warning. Renderers and the
// warn-level threshold both key off this tier.
type Severity uint8

const (
	// SevError diagnostics make the run fail.
	SevError Severity = 0
	// MaxWarnLevel is the strongest warning tier.
	MaxWarnLevel Severity = 5
)

// IsError reports whether s is the error tier.
func (s Severity) IsError() bool {
	return s == SevError
}

// IsWarning reports whether s is one of the warning tiers.
func (s Severity) IsWarning() bool {
	return s >= 1 && s <= MaxWarnLevel
}

func (s Severity) String() string {
	if s == SevError {
		return "ERROR"
	}
	if s.IsWarning() {
		return "WARNING"
	}
	return "UNKNOWN"
}
