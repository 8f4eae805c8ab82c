package symbols

import (
	"testing"

	"terbium/internal/source"
)

func TestCloseMatchFindsNearbyName(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()
	s.Insert(Entry{Name: strings.Intern("calculate_totals")})

	got, ok := s.CloseMatch("calculate_total", strings)
	if !ok || got != "calculate_totals" {
		t.Errorf("CloseMatch = %q, %v; want calculate_totals", got, ok)
	}
}

func TestCloseMatchThresholdScalesWithLength(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()
	s.Insert(Entry{Name: strings.Intern("ab")})
	s.Insert(Entry{Name: strings.Intern("verylongidentifiername")})

	// Short names tolerate two edits.
	if got, ok := s.CloseMatch("cd", strings); !ok || got != "ab" {
		t.Errorf("CloseMatch(cd) = %q, %v; want ab within distance 2", got, ok)
	}
	// Entirely different short names beyond two edits do not match.
	if _, ok := s.CloseMatch("wxyz", strings); ok {
		t.Error("CloseMatch(wxyz) should find nothing within threshold")
	}
	// Longer names scale the budget: 3 edits pass at 19 runes.
	if got, ok := s.CloseMatch("verylongidentifiern", strings); !ok || got != "verylongidentifiername" {
		t.Errorf("CloseMatch(verylongidentifiern) = %q, %v; want verylongidentifiername", got, ok)
	}
}

func TestCloseMatchThresholdCountsRunes(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()
	s.Insert(Entry{Name: strings.Intern("переменнаяабв")})

	// "переменная" is 10 runes across 20 bytes, so the budget is 2 edits.
	// A candidate 3 edits away must stay out.
	if got, ok := s.CloseMatch("переменная", strings); ok {
		t.Errorf("CloseMatch = %q, want no match at distance 3", got)
	}

	s.Insert(Entry{Name: strings.Intern("переменнаяаб")})
	if got, ok := s.CloseMatch("переменная", strings); !ok || got != "переменнаяаб" {
		t.Errorf("CloseMatch = %q, %v; want the distance-2 candidate", got, ok)
	}
}

func TestCloseMatchSkipsExactName(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()
	s.Insert(Entry{Name: strings.Intern("count")})

	// The identical name is never suggested for itself.
	if got, ok := s.CloseMatch("count", strings); ok {
		t.Errorf("CloseMatch(count) = %q, want no self-suggestion", got)
	}
}

func TestCloseMatchPrefersCloserCandidate(t *testing.T) {
	strings := source.NewInterner()
	s := NewStore()
	s.Insert(Entry{Name: strings.Intern("counter")})
	s.Insert(Entry{Name: strings.Intern("count")})

	got, ok := s.CloseMatch("counts", strings)
	if !ok || got != "count" {
		t.Errorf("CloseMatch(counts) = %q, %v; want count (distance 1)", got, ok)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"calculate_total", "calculate_totals", 1},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSuggestThreshold(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 2},
		{5, 2},
		{14, 2},
		{15, 2},
		{18, 3},
		{25, 4},
	}
	for _, tt := range tests {
		if got := suggestThreshold(tt.n); got != tt.want {
			t.Errorf("suggestThreshold(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
