// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func testClient(ts *httptest.Server) *Client {
	return &Client{HTTP: ts.Client(), UserAgent: "test/0.1"}
}

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  string
	}{
		{"single term", []string{"BERT"}, `all:"BERT"`},
		{"multiple terms are conjunctive", []string{"quantum computing", "error correction"},
			`all:"quantum computing" AND all:"error correction"`},
		{"blank terms dropped", []string{"", "  ", "LLM"}, `all:"LLM"`},
		{"no terms", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildSearchQuery(tt.terms); got != tt.want {
				t.Errorf("buildSearchQuery(%v) = %q, want %q", tt.terms, got, tt.want)
			}
		})
	}
}

func TestClientFindPapers(t *testing.T) {
	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(sampleFeed))
	}))
	defer ts.Close()

	orig := apiBase
	apiBase = ts.URL
	defer func() { apiBase = orig }()

	papers, err := testClient(ts).FindPapers(context.Background(), []string{"quantum", "deep learning"}, "2024-01-01", 3)
	if err != nil {
		t.Fatalf("FindPapers: %v", err)
	}

	if want := `all:"quantum" AND all:"deep learning"`; gotQuery.Get("search_query") != want {
		t.Errorf("search_query = %q, want %q", gotQuery.Get("search_query"), want)
	}
	if gotQuery.Get("start") != "0" {
		t.Errorf("start = %q, want 0", gotQuery.Get("start"))
	}
	if gotQuery.Get("max_results") != "3" {
		t.Errorf("max_results = %q, want 3", gotQuery.Get("max_results"))
	}
	if gotQuery.Get("sortBy") != "submittedDate" || gotQuery.Get("sortOrder") != "descending" {
		t.Errorf("sort params = %q/%q", gotQuery.Get("sortBy"), gotQuery.Get("sortOrder"))
	}

	// The min-date cutoff is applied during parsing.
	if len(papers) != 1 || papers[0].ID != "2401.11111v1" {
		t.Errorf("papers = %+v, want only 2401.11111v1", papers)
	}
}

func TestClientFindPapersEmptyTerms(t *testing.T) {
	c := &Client{HTTP: http.DefaultClient, UserAgent: "test/0.1"}
	if _, err := c.FindPapers(context.Background(), nil, "", 10); err == nil {
		t.Fatal("expected error for empty terms")
	}
}

func TestClientFindPapersHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	orig := apiBase
	apiBase = ts.URL
	defer func() { apiBase = orig }()

	_, err := testClient(ts).FindPapers(context.Background(), []string{"x"}, "", 10)
	var re *RepositoryError
	if !errors.As(err, &re) {
		t.Fatalf("error = %T (%v), want *RepositoryError", err, err)
	}
}

func TestClientFindPapersTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close()

	orig := apiBase
	apiBase = ts.URL
	defer func() { apiBase = orig }()

	c := &Client{HTTP: http.DefaultClient, UserAgent: "test/0.1"}
	_, err := c.FindPapers(context.Background(), []string{"x"}, "", 10)
	var re *RepositoryError
	if !errors.As(err, &re) {
		t.Fatalf("error = %T (%v), want *RepositoryError", err, err)
	}
}

func TestClientFindPapersDefaultMaxResults(t *testing.T) {
	var gotMax string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMax = r.URL.Query().Get("max_results")
		w.Write([]byte(sampleFeed))
	}))
	defer ts.Close()

	orig := apiBase
	apiBase = ts.URL
	defer func() { apiBase = orig }()

	if _, err := testClient(ts).FindPapers(context.Background(), []string{"x"}, "", 0); err != nil {
		t.Fatalf("FindPapers: %v", err)
	}
	if gotMax != "10" {
		t.Errorf("max_results = %q, want 10", gotMax)
	}
}

var _ Gateway = (*Client)(nil)
var _ Gateway = (*RemoteGateway)(nil)
