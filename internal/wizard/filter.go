package wizard

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type scoredOption struct {
	label string
	score int
	dist  int
}

// filterOptions narrows and ranks selector options against a typed query.
// The gate is an in-order subsequence match; ranking prefers prefix and
// contiguous hits, with edit distance breaking ties so near-misses like
// "dabny" still surface "Dabney Hall" first. An empty query returns the
// options unchanged.
func filterOptions(options []string, query string) []string {
	q := strings.TrimSpace(query)
	if q == "" {
		return append([]string(nil), options...)
	}

	scored := make([]scoredOption, 0, len(options))
	for _, label := range options {
		matched, score := matchScore(label, q)
		if !matched {
			continue
		}
		dist := levenshtein.ComputeDistance(strings.ToLower(q), strings.ToLower(label))
		scored = append(scored, scoredOption{label: label, score: score, dist: dist})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].dist != scored[j].dist {
			return scored[i].dist < scored[j].dist
		}
		return scored[i].label < scored[j].label
	})

	out := make([]string, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.label)
	}
	return out
}

// matchScore gates on an in-order subsequence match and scores prefix,
// contiguity and exact hits.
func matchScore(label, query string) (bool, int) {
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.Contains(labelLower, queryLower) {
		score += 5
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}
