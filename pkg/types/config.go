// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the arXiv gateway.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the default result cap when a query does not state
	// one (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// AIConfig holds settings for the query interpretation model.
type AIConfig struct {
	// Model is the model identifier (e.g. "claude-sonnet-4-5").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the model API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens caps the model reply length (default 1024).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// ServerConfig holds settings for the find-papers HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// Config groups all component configurations.
type Config struct {
	Search SearchConfig `json:"search" yaml:"search"`
	AI     AIConfig     `json:"ai" yaml:"ai"`
	Server ServerConfig `json:"server" yaml:"server"`
}
