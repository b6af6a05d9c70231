package match

import "sort"

// DefaultMinScore is the minimum normalized similarity for a candidate to be
// offered as a suggestion.
const DefaultMinScore = 0.5

// suggestion pairs a candidate name with its similarity score against a query.
type suggestion struct {
	Name  string
	Score float64
}

// suggestionList is a list of suggestions with ranking functionality.
type suggestionList []suggestion

// Len implements sort.Interface.
func (s suggestionList) Len() int { return len(s) }

// Swap implements sort.Interface.
func (s suggestionList) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (s suggestionList) Less(i, j int) bool {
	// Higher score comes first
	if s[i].Score != s[j].Score {
		return s[i].Score > s[j].Score
	}
	// Tie-breaker: alphabetical by candidate name
	return s[i].Name < s[j].Name
}

// Nearest ranks candidates by similarity to name and returns the closest ones,
// at most max. Candidates scoring below DefaultMinScore are dropped. Both the
// query and candidates are normalized with NormalizeName before comparison, so
// case, separators, and generic arity suffixes do not affect the ranking.
func Nearest(name string, candidates []string, max int) []string {
	queryNorm := NormalizeName(name)

	var ranked suggestionList

	for _, candidate := range candidates {
		score := LevenshteinNormalized(queryNorm, NormalizeName(candidate))
		if score < DefaultMinScore {
			continue
		}

		ranked = append(ranked, suggestion{Name: candidate, Score: score})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(ranked)

	if max < len(ranked) {
		ranked = ranked[:max]
	}

	names := make([]string, 0, len(ranked))
	for _, s := range ranked {
		names = append(names, s.Name)
	}

	return names
}
