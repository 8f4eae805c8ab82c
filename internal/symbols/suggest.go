package symbols

import (
	"math"
	"unicode/utf8"

	"terbium/internal/source"
)

// CloseMatch scans every visible binding for the closest name within the
// edit-distance threshold for name's length. Ties go to the binding
// declared first, walking innermost scope outward.
func (s *Store) CloseMatch(name string, strings *source.Interner) (string, bool) {
	limit := suggestThreshold(utf8.RuneCountInString(name))
	best := ""
	bestDist := limit + 1

	for i := len(s.scopes) - 1; i >= 0; i-- {
		sc := s.scopes[i]
		for _, id := range sc.order {
			candID := s.Get(id).Name
			if sc.names[candID] != id {
				continue // replaced by a later same-scope binding
			}
			cand := strings.MustLookup(candID)
			if cand == name {
				continue
			}
			if d := levenshtein(name, cand); d < bestDist {
				best = cand
				bestDist = d
			}
		}
	}
	if bestDist <= limit {
		return best, true
	}
	return "", false
}

// suggestThreshold scales the tolerated edit distance with the rune
// count of the missing name, never below 2.
func suggestThreshold(n int) int {
	scaled := int(math.Round(0.14 * float64(n)))
	if scaled < 2 {
		return 2
	}
	return scaled
}

// levenshtein computes edit distance with a two-row table.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
