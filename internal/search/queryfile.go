// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results.
// A researcher can save a search to a file and reload it later without
// re-querying the model or arXiv.
type QueryFile struct {
	// Query is the original free-text request.
	Query   string           `yaml:"query"`
	Spec    types.SearchSpec `yaml:"spec"`
	Results []types.Paper    `yaml:"results"`
	Summary QuerySummary     `yaml:"summary"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves the request, its specification, and the ranked
// results to a YAML file.
func WriteQueryFile(path, userQuery string, out Output) error {
	qf := QueryFile{
		Query:   userQuery,
		Spec:    out.Spec,
		Results: out.Papers,
		Summary: QuerySummary{
			Total:     len(out.Papers),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// Rerank re-scores the stored results against the stored terms and
// returns them as a fresh Output. Useful after hand-editing the terms in
// a saved file.
func (qf *QueryFile) Rerank() Output {
	papers := make([]types.Paper, len(qf.Results))
	copy(papers, qf.Results)
	Rank(qf.Spec.Terms, papers)
	return Output{Spec: qf.Spec, Papers: papers}
}
