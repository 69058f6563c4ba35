package linkage

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matcher locates a company entry for an identity key once exact lookup has
// missed. Implementations must be deterministic for a fixed index.
type Matcher interface {
	Name() string
	Match(idx *Index, key string) (*Entry, bool)
}

// SubstringMatcher matches when one key is a substring of the other, taking
// the first candidate in discovery order. With several plausible candidates
// the outcome depends on sheet order; callers wanting a tie-break use
// RankedMatcher instead.
type SubstringMatcher struct{}

func (SubstringMatcher) Name() string { return "substring" }

func (SubstringMatcher) Match(idx *Index, key string) (*Entry, bool) {
	if key == "" {
		return nil, false
	}
	for _, e := range idx.Entries() {
		if strings.Contains(e.Key, key) || strings.Contains(key, e.Key) {
			return e, true
		}
	}
	return nil, false
}

// RankedMatcher keeps the substring candidate set but picks the candidate
// with the smallest Levenshtein distance to the key, breaking score ties by
// discovery order.
type RankedMatcher struct{}

func (RankedMatcher) Name() string { return "ranked" }

func (RankedMatcher) Match(idx *Index, key string) (*Entry, bool) {
	if key == "" {
		return nil, false
	}
	var best *Entry
	bestDist := -1
	for _, e := range idx.Entries() {
		if !strings.Contains(e.Key, key) && !strings.Contains(key, e.Key) {
			continue
		}
		d := fuzzy.LevenshteinDistance(key, e.Key)
		if best == nil || d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best, best != nil
}

// MatcherFor returns the strategy for a configured name, defaulting to the
// substring scan.
func MatcherFor(name string) Matcher {
	if name == (RankedMatcher{}).Name() {
		return RankedMatcher{}
	}
	return SubstringMatcher{}
}
