// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv API and parses its Atom feed into Papers.
package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/paper-scout/internal/httputil"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// apiBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// defaultMaxResults caps results when the caller does not.
const defaultMaxResults = 10

// RepositoryError reports a transport failure or non-success response from
// the arXiv API. The underlying cause message is preserved.
type RepositoryError struct {
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("querying arXiv: %v", e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// Gateway fetches papers matching a set of search terms. Two bindings
// exist: Client calls the arXiv API in-process, RemoteGateway delegates
// to a paper-scout server over HTTP. Both share the same parse and filter
// semantics; callers pick one at composition time.
type Gateway interface {
	FindPapers(ctx context.Context, terms []string, minDate string, maxResults int) ([]types.Paper, error)
}

// Client is the in-process Gateway binding.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// NewClient returns a Client configured from cfg.
func NewClient(cfg types.SearchConfig) *Client {
	return &Client{
		HTTP:      httputil.NewClient(cfg.HTTPConfig),
		UserAgent: cfg.UserAgent,
	}
}

// FindPapers queries the arXiv API for papers matching every term,
// newest first, and parses the feed with the min-date cutoff applied.
// Transport failures and non-success statuses yield a *RepositoryError;
// an unparsable body yields a *FeedParseError.
func (c *Client) FindPapers(ctx context.Context, terms []string, minDate string, maxResults int) ([]types.Paper, error) {
	query := buildSearchQuery(terms)
	if query == "" {
		return nil, fmt.Errorf("empty arXiv query: no search terms")
	}

	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	params := url.Values{
		"search_query": {query},
		"start":        {"0"},
		"max_results":  {strconv.Itoa(maxResults)},
		"sortBy":       {"submittedDate"},
		"sortOrder":    {"descending"},
	}
	reqURL := apiBase + "?" + params.Encode()

	body, err := httputil.Get(ctx, c.HTTP, reqURL, c.UserAgent)
	if err != nil {
		return nil, &RepositoryError{Err: err}
	}

	return ParseFeed(body, minDate)
}

// buildSearchQuery combines the terms into a conjunctive expression,
// each term quoted and matched across all indexed fields. Requiring
// every term trades recall for precision.
func buildSearchQuery(terms []string) string {
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("all:%q", term))
	}
	return strings.Join(parts, " AND ")
}
