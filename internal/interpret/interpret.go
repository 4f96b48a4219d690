// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interpret turns a free-text research request into a structured
// search specification by consulting a language model and decoding its
// reply. The inference call is the package's only side effect; the decode
// and validation logic is deterministic and tested against stub backends.
package interpret

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// defaultMaxResults is used when the request states no count.
const defaultMaxResults = 10

// Backend abstracts the model API so tests can supply a stub. Complete
// sends one system instruction plus one user message and returns the
// model's text reply.
type Backend interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// InterpretationError reports a model reply that could not be decoded into
// a search specification. RawReply carries the reply for diagnosis. The
// call is not retried; the caller decides whether to retry or surface.
type InterpretationError struct {
	RawReply string
	Err      error
}

func (e *InterpretationError) Error() string {
	return fmt.Sprintf("decoding model reply: %v (raw reply: %q)", e.Err, e.RawReply)
}

func (e *InterpretationError) Unwrap() error { return e.Err }

// modelReply mirrors the JSON object the prompt contract requires.
type modelReply struct {
	SearchTerms []string `json:"search_terms"`
	MinDate     *string  `json:"min_date"`
	MaxResults  *int     `json:"max_results"`
}

// Interpret sends userQuery to the model with the current date (so relative
// phrases like "last 6 months" resolve) and decodes the reply into a
// SearchSpec. Backend failures propagate unchanged; a reply that does not
// decode yields an *InterpretationError.
func Interpret(ctx context.Context, b Backend, userQuery string, now time.Time) (types.SearchSpec, error) {
	system, err := renderPrompt(now.Format("2006-01-02"))
	if err != nil {
		return types.SearchSpec{}, fmt.Errorf("rendering prompt: %w", err)
	}

	reply, err := b.Complete(ctx, system, userQuery)
	if err != nil {
		return types.SearchSpec{}, err
	}

	text := stripFence(strings.TrimSpace(reply))

	var decoded modelReply
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return types.SearchSpec{}, &InterpretationError{RawReply: reply, Err: err}
	}

	spec := types.SearchSpec{MaxResults: defaultMaxResults}

	for _, term := range decoded.SearchTerms {
		if term = strings.TrimSpace(term); term != "" {
			spec.Terms = append(spec.Terms, term)
		}
	}
	if decoded.MinDate != nil {
		if d := strings.TrimSpace(*decoded.MinDate); d != "" && d != "null" {
			spec.MinDate = d
		}
	}
	if decoded.MaxResults != nil && *decoded.MaxResults >= 1 {
		spec.MaxResults = *decoded.MaxResults
	}

	return spec, nil
}

// stripFence removes a single leading and trailing markdown code fence,
// with an optional "json" language tag, from a model reply. Anything else
// passes through untouched.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 2 {
		s = strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
	}
	if strings.HasPrefix(s, "json") {
		s = strings.TrimSpace(s[len("json"):])
	}
	return s
}
