package sema

// Set is the enabled-analyzer configuration. The zero value enables
// nothing; build one with the constructors below.
type Set struct {
	enabled [numKinds]bool
}

// Contains reports whether the kind is enabled.
func (s *Set) Contains(k Kind) bool {
	if k >= numKinds {
		return false
	}
	return s.enabled[k]
}

// Kinds returns the enabled kinds in declaration order.
func (s *Set) Kinds() []Kind {
	var out []Kind
	for k := Kind(0); k < numKinds; k++ {
		if s.enabled[k] {
			out = append(out, k)
		}
	}
	return out
}

// NoAnalyzers enables nothing.
func NoAnalyzers() Set {
	return Set{}
}

// AllAnalyzers enables every kind.
func AllAnalyzers() Set {
	var s Set
	for k := Kind(0); k < numKinds; k++ {
		s.enabled[k] = true
	}
	return s
}

// FromDisabled starts from all and removes the given kinds.
func FromDisabled(disabled []Kind) Set {
	s := AllAnalyzers()
	for _, k := range disabled {
		if k < numKinds {
			s.enabled[k] = false
		}
	}
	return s
}

// FromAllowedDisabled starts from all, unions in allowed, then removes
// disabled. Disabling wins when both name the same kind.
func FromAllowedDisabled(allowed, disabled []Kind) Set {
	s := AllAnalyzers()
	for _, k := range allowed {
		if k < numKinds {
			s.enabled[k] = true
		}
	}
	for _, k := range disabled {
		if k < numKinds {
			s.enabled[k] = false
		}
	}
	return s
}
