// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-scout pipeline.
package types

// Paper holds the metadata for one arXiv entry returned by a search.
// A fresh slice of Papers is built from every feed parse; nothing is
// persisted across searches. RelevanceScore is the only field written
// after construction.
type Paper struct {
	// ID is the arXiv identifier extracted from the entry's abstract URL
	// (e.g. "2301.07041v1").
	ID string `json:"arxiv_id" yaml:"arxiv_id"`

	// Title is the paper title, whitespace-normalized.
	Title string `json:"title" yaml:"title"`

	// Summary is the paper abstract, whitespace-normalized.
	Summary string `json:"summary" yaml:"summary"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Categories lists the arXiv taxonomy codes (e.g. "cs.LG").
	Categories []string `json:"categories" yaml:"categories"`

	// Published and Updated are RFC 3339 timestamps exactly as supplied
	// by the feed, trimmed of surrounding whitespace.
	Published string `json:"published" yaml:"published"`
	Updated   string `json:"updated,omitempty" yaml:"updated,omitempty"`

	// URL is the canonical abstract page link.
	URL string `json:"url" yaml:"url"`

	// RelevanceScore is a value between 0.0 and 1.0 indicating relevance
	// to the search terms. Zero until the paper has been scored.
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`
}

// SearchSpec is the structured search intent extracted from a free-text
// request. It is built once per search call and never modified afterwards.
type SearchSpec struct {
	// Terms are the key concepts in extraction order (typically 2-4).
	// Order carries no ranking weight.
	Terms []string `json:"search_terms" yaml:"search_terms"`

	// MinDate is an optional publication lower bound in YYYY-MM-DD form.
	// Empty means no lower bound.
	MinDate string `json:"min_date,omitempty" yaml:"min_date,omitempty"`

	// MaxResults is the result cap. Always >= 1; defaults to 10.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LinkReceipt acknowledges a submitted paper link. Link processing itself
// is not implemented; the receipt only records that the link was received.
type LinkReceipt struct {
	Status  string `json:"status" yaml:"status"`
	Link    string `json:"link" yaml:"link"`
	Message string `json:"message" yaml:"message"`
}
