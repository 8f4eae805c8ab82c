package sema

import "testing"

func TestAllAnalyzers(t *testing.T) {
	s := AllAnalyzers()
	for k := Kind(0); k < numKinds; k++ {
		if !s.Contains(k) {
			t.Errorf("AllAnalyzers misses %s", k)
		}
	}
	if got := len(s.Kinds()); got != int(numKinds) {
		t.Errorf("Kinds() returned %d entries, want %d", got, numKinds)
	}
}

func TestNoAnalyzers(t *testing.T) {
	s := NoAnalyzers()
	for k := Kind(0); k < numKinds; k++ {
		if s.Contains(k) {
			t.Errorf("NoAnalyzers contains %s", k)
		}
	}
	if s.Kinds() != nil {
		t.Errorf("Kinds() = %v, want nil", s.Kinds())
	}
}

func TestFromDisabled(t *testing.T) {
	s := FromDisabled([]Kind{UnusedVariables, NonSnakeCase})
	if s.Contains(UnusedVariables) || s.Contains(NonSnakeCase) {
		t.Error("disabled kinds still enabled")
	}
	if !s.Contains(UnresolvedIdentifiers) {
		t.Error("untouched kinds should stay enabled")
	}
}

func TestFromAllowedDisabledDisableWins(t *testing.T) {
	s := FromAllowedDisabled(
		[]Kind{UnusedVariables},
		[]Kind{UnusedVariables, GlobalMutableVariables},
	)
	if s.Contains(UnusedVariables) {
		t.Error("a kind both allowed and disabled must end up disabled")
	}
	if s.Contains(GlobalMutableVariables) {
		t.Error("disabled kind still enabled")
	}
	if !s.Contains(UnresolvedIdentifiers) {
		t.Error("unlisted kinds should stay enabled")
	}
}

func TestSetIgnoresOutOfRangeKinds(t *testing.T) {
	s := FromDisabled([]Kind{numKinds + 3})
	for k := Kind(0); k < numKinds; k++ {
		if !s.Contains(k) {
			t.Errorf("out-of-range disable clobbered %s", k)
		}
	}
	if s.Contains(numKinds) {
		t.Error("Contains should reject out-of-range kinds")
	}
}
