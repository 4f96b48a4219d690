// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/paper-scout/internal/httputil"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// findPapersRequest is the wire form of a find-papers call to a
// paper-scout server.
type findPapersRequest struct {
	SearchTerms []string `json:"search_terms"`
	MinDate     string   `json:"min_date,omitempty"`
	MaxResults  int      `json:"max_results"`
}

// errorPayload is the server's single-field diagnostic response.
type errorPayload struct {
	Error string `json:"error"`
}

// RemoteGateway is the Gateway binding that delegates the arXiv call to a
// paper-scout server over HTTP.
type RemoteGateway struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

// NewRemoteGateway returns a RemoteGateway targeting baseURL.
func NewRemoteGateway(baseURL string, cfg types.SearchConfig) *RemoteGateway {
	return &RemoteGateway{
		HTTP:      httputil.NewClient(cfg.HTTPConfig),
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: cfg.UserAgent,
	}
}

// FindPapers calls the server's find-papers endpoint. Transport failures
// and error responses yield a *RepositoryError preserving the server's
// diagnostic message. A success response whose body is not a paper list
// decodes to zero results rather than an error.
func (g *RemoteGateway) FindPapers(ctx context.Context, terms []string, minDate string, maxResults int) ([]types.Paper, error) {
	reqBody, err := json.Marshal(findPapersRequest{
		SearchTerms: terms,
		MinDate:     minDate,
		MaxResults:  maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling find-papers request: %w", err)
	}

	body, err := httputil.PostJSON(ctx, g.HTTP, g.BaseURL+"/api/find-papers", g.UserAgent, reqBody)
	if err != nil {
		var se *httputil.StatusError
		if errors.As(err, &se) {
			var ep errorPayload
			if json.Unmarshal(se.Body, &ep) == nil && ep.Error != "" {
				return nil, &RepositoryError{Err: fmt.Errorf("server: %s", ep.Error)}
			}
		}
		return nil, &RepositoryError{Err: err}
	}

	var papers []types.Paper
	if err := json.Unmarshal(body, &papers); err != nil {
		// Non-list payload: treated as zero results, not an error.
		return nil, nil
	}
	return papers, nil
}
