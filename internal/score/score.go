// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score ranks papers by term overlap with the search request.
package score

import (
	"strings"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Field weights. Title matches are a stronger relevance signal than
// abstract matches, so the title carries 1.5x the per-term weight.
const (
	titleWeight   = 0.6
	summaryWeight = 0.4
)

// neutralScore is returned when there are no terms to judge against.
const neutralScore = 0.5

// Relevance returns a score in [0.0, 1.0] measuring how well paper matches
// the search terms. Each term is checked case-insensitively as a substring
// of the title and of the summary; a term can count in both fields. The
// function is total: it never fails, and empty terms yield the neutral 0.5.
func Relevance(terms []string, paper types.Paper) float64 {
	if len(terms) == 0 {
		return neutralScore
	}

	title := strings.ToLower(paper.Title)
	summary := strings.ToLower(paper.Summary)

	var titleMatches, summaryMatches int
	for _, term := range terms {
		t := strings.ToLower(term)
		if strings.Contains(title, t) {
			titleMatches++
		}
		if strings.Contains(summary, t) {
			summaryMatches++
		}
	}

	n := float64(len(terms))
	s := float64(titleMatches)/n*titleWeight + float64(summaryMatches)/n*summaryWeight

	// With match counts bounded by the term count the sum cannot leave
	// [0, 1]; the clamp guards future weight changes.
	return clamp(s, 0.0, 1.0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
