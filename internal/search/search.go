// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search sequences the full pipeline: interpret the request,
// query the arXiv gateway, score the results, and rank them.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/paper-scout/internal/arxiv"
	"github.com/pdiddy/paper-scout/internal/interpret"
	"github.com/pdiddy/paper-scout/internal/score"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// Output holds the ranked papers and the specification that produced them.
// Consumers display both; they must not re-derive or re-sort the papers.
type Output struct {
	Spec   types.SearchSpec
	Papers []types.Paper
}

// Run executes one search: free text in, ranked papers out. Interpretation
// and repository errors propagate unchanged; Run adds no error kinds of its
// own. Progress lines go to w. Each call is independent — no state survives
// between invocations.
func Run(ctx context.Context, model interpret.Backend, gw arxiv.Gateway, userQuery string, now time.Time, w io.Writer) (Output, error) {
	fmt.Fprintf(w, "interpreting query...\n")
	spec, err := interpret.Interpret(ctx, model, userQuery, now)
	if err != nil {
		return Output{}, err
	}
	fmt.Fprintf(w, "searching arXiv for %v (max %d)\n", spec.Terms, spec.MaxResults)

	papers, err := gw.FindPapers(ctx, spec.Terms, spec.MinDate, spec.MaxResults)
	if err != nil {
		return Output{}, err
	}

	if len(papers) == 0 {
		fmt.Fprintf(w, "no papers found\n")
		return Output{Spec: spec}, nil
	}

	Rank(spec.Terms, papers)
	fmt.Fprintf(w, "ranked %d papers\n", len(papers))

	return Output{Spec: spec, Papers: papers}, nil
}

// Rank scores every paper against terms and sorts descending by score.
// The sort is stable, so equally relevant papers keep the gateway's
// order — descending submission date, newest first.
func Rank(terms []string, papers []types.Paper) {
	for i := range papers {
		papers[i].RelevanceScore = score.Relevance(terms, papers[i])
	}
	sort.SliceStable(papers, func(i, j int) bool {
		return papers[i].RelevanceScore > papers[j].RelevanceScore
	})
}

// FormatTable writes papers as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-14s  %-60s  %-20s  %-10s  %s\n",
		"Rank", "ID", "Title", "Authors", "Published", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, p := range out.Papers {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		published := p.Published
		if len(published) > 10 {
			published = published[:10]
		}
		fmt.Fprintf(w, "%-4d  %-14s  %-60s  %-20s  %-10s  %.2f\n",
			i+1, p.ID, title, formatAuthors(p.Authors), published, p.RelevanceScore)
	}

	fmt.Fprintf(w, "\n%d papers for terms %v\n", len(out.Papers), out.Spec.Terms)
}

// FormatJSON writes papers as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Papers)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
