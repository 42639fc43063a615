package calculator

import (
	"sort"
	"strings"

	"verdant/internal/domain"
)

// RankedSet is the sorted full list plus its two-way partition. Every
// scored instrument lands in exactly one of Investable or Excluded.
type RankedSet struct {
	All        []domain.ScoredInstrument
	Investable []domain.ScoredInstrument
	Excluded   []domain.ScoredInstrument
}

// RankAndPartition sorts by composite score descending, preserving catalog
// order on ties, then splits out AVOID-labeled instruments. The other three
// recommendation labels all count as investable.
func RankAndPartition(scored []domain.ScoredInstrument) RankedSet {
	all := make([]domain.ScoredInstrument, len(scored))
	copy(all, scored)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CompositeScore > all[j].CompositeScore
	})

	set := RankedSet{All: all}
	for _, s := range all {
		if s.Recommendation == domain.RecommendationAvoid {
			set.Excluded = append(set.Excluded, s)
		} else {
			set.Investable = append(set.Investable, s)
		}
	}
	return set
}

// TopN returns the first n investable instruments, or all of them when
// fewer exist.
func (r RankedSet) TopN(n int) []domain.ScoredInstrument {
	if n > len(r.Investable) {
		n = len(r.Investable)
	}
	return r.Investable[:n]
}

// MatchesQuery reports whether the instrument's ticker or name contains the
// query, case-insensitively. An empty query matches everything.
func MatchesQuery(s domain.ScoredInstrument, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Ticker), query) ||
		strings.Contains(strings.ToLower(s.Name), query)
}

// FilterByQuery keeps instruments matching the query. An empty query returns
// the input unchanged. Filtering never reorders: callers that display ranks
// should derive them from positions in the unfiltered list.
func FilterByQuery(list []domain.ScoredInstrument, query string) []domain.ScoredInstrument {
	if strings.TrimSpace(query) == "" {
		return list
	}
	out := []domain.ScoredInstrument{}
	for _, s := range list {
		if MatchesQuery(s, query) {
			out = append(out, s)
		}
	}
	return out
}
