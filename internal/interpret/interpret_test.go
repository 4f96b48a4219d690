// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interpret

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// stubBackend returns a fixed reply, isolating the deterministic decode
// logic from live inference.
type stubBackend struct {
	reply  string
	err    error
	system string
	user   string
}

func (s *stubBackend) Complete(_ context.Context, system, user string) (string, error) {
	s.system = system
	s.user = user
	return s.reply, s.err
}

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  types.SearchSpec
	}{
		{
			name:  "full reply",
			reply: `{"search_terms":["quantum computing","error correction"],"min_date":"2023-09-15","max_results":5}`,
			want: types.SearchSpec{
				Terms:      []string{"quantum computing", "error correction"},
				MinDate:    "2023-09-15",
				MaxResults: 5,
			},
		},
		{
			name:  "defaults applied",
			reply: `{"search_terms":["BERT"]}`,
			want:  types.SearchSpec{Terms: []string{"BERT"}, MaxResults: 10},
		},
		{
			name:  "null min_date means unbounded",
			reply: `{"search_terms":["BERT"],"min_date":null,"max_results":10}`,
			want:  types.SearchSpec{Terms: []string{"BERT"}, MaxResults: 10},
		},
		{
			name:  "string null min_date means unbounded",
			reply: `{"search_terms":["BERT"],"min_date":"null","max_results":10}`,
			want:  types.SearchSpec{Terms: []string{"BERT"}, MaxResults: 10},
		},
		{
			name:  "fenced reply decodes like unfenced",
			reply: "```json\n{\"search_terms\":[\"BERT\"],\"max_results\":5}\n```",
			want:  types.SearchSpec{Terms: []string{"BERT"}, MaxResults: 5},
		},
		{
			name:  "fence without language tag",
			reply: "```\n{\"search_terms\":[\"BERT\"],\"max_results\":5}\n```",
			want:  types.SearchSpec{Terms: []string{"BERT"}, MaxResults: 5},
		},
		{
			name:  "blank terms dropped",
			reply: `{"search_terms":["", "  ", "LLM"],"max_results":2}`,
			want:  types.SearchSpec{Terms: []string{"LLM"}, MaxResults: 2},
		},
		{
			name:  "non-positive max_results falls back to default",
			reply: `{"search_terms":["LLM"],"max_results":0}`,
			want:  types.SearchSpec{Terms: []string{"LLM"}, MaxResults: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Interpret(context.Background(), &stubBackend{reply: tt.reply}, "q", testNow)
			if err != nil {
				t.Fatalf("Interpret: %v", err)
			}
			if len(spec.Terms) != len(tt.want.Terms) {
				t.Fatalf("Terms = %v, want %v", spec.Terms, tt.want.Terms)
			}
			for i := range spec.Terms {
				if spec.Terms[i] != tt.want.Terms[i] {
					t.Errorf("Terms[%d] = %q, want %q", i, spec.Terms[i], tt.want.Terms[i])
				}
			}
			if spec.MinDate != tt.want.MinDate {
				t.Errorf("MinDate = %q, want %q", spec.MinDate, tt.want.MinDate)
			}
			if spec.MaxResults != tt.want.MaxResults {
				t.Errorf("MaxResults = %d, want %d", spec.MaxResults, tt.want.MaxResults)
			}
		})
	}
}

func TestInterpretMalformedReply(t *testing.T) {
	raw := "I couldn't find a structured answer, sorry!"
	_, err := Interpret(context.Background(), &stubBackend{reply: raw}, "q", testNow)

	var ie *InterpretationError
	if !errors.As(err, &ie) {
		t.Fatalf("error = %T (%v), want *InterpretationError", err, err)
	}
	if ie.RawReply != raw {
		t.Errorf("RawReply = %q, want %q", ie.RawReply, raw)
	}
}

func TestInterpretBackendErrorPropagates(t *testing.T) {
	backendErr := errors.New("Claude API returned 401: invalid x-api-key")
	_, err := Interpret(context.Background(), &stubBackend{err: backendErr}, "q", testNow)
	if !errors.Is(err, backendErr) {
		t.Fatalf("error = %v, want the backend error unchanged", err)
	}
	var ie *InterpretationError
	if errors.As(err, &ie) {
		t.Error("backend failures must not be wrapped as InterpretationError")
	}
}

func TestInterpretPromptCarriesCurrentDate(t *testing.T) {
	b := &stubBackend{reply: `{"search_terms":["x"]}`}
	if _, err := Interpret(context.Background(), b, "find recent papers", testNow); err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !strings.Contains(b.system, "Current date: 2024-03-15") {
		t.Errorf("system prompt missing current date:\n%s", b.system)
	}
	if b.user != "find recent papers" {
		t.Errorf("user message = %q", b.user)
	}
}

func TestStripFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with tag on its own line", "```\njson\n{\"a\":1}\n```", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFence(tt.in); got != tt.want {
				t.Errorf("stripFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
