// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package interpret

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"text/template"
)

// interpretPromptTmpl is the system instruction sent with every request.
// It fixes the output contract: a single JSON object with exactly three
// fields, so the reply can be decoded deterministically.
var interpretPromptTmpl = template.Must(template.New("interpret").Parse(`You are a helpful assistant that extracts structured information from natural language queries about arXiv papers.

Current date: {{.CurrentDate}}

Given a user query, extract the following information and return ONLY a valid JSON object (no markdown, no explanation):

{
    "search_terms": ["list", "of", "key", "terms"],
    "min_date": "YYYY-MM-DD or null if not specified",
    "max_results": integer (default 10 if not specified)
}

Rules:
- search_terms: Extract 2-4 KEY terms only. Be selective and avoid redundancy. Focus on the core concepts.
  * Use specific technical terms when present (e.g. "transformer", "BERT", "quantum computing")
  * Avoid generic words like "papers", "research", "about"
  * Don't include synonyms or related terms - pick the most important one
  * Example: "LLM red teaming for AI agent security" -> ["LLM", "red teaming", "AI agents"]
- min_date: If the user mentions a time period (e.g. "last 6 months", "recent", "past year"), calculate the date. If "recent" without specifics, use 6 months ago. If not mentioned, use null.
- max_results: Extract the number of papers requested. Default to 10 if not specified.

Return ONLY the JSON object, nothing else.`))

// apiURL is the Claude Messages API endpoint. Package-level var for test
// substitution.
var apiURL = "https://api.anthropic.com/v1/messages"

const defaultMaxTokens = 1024

// ClaudeBackend calls the Claude Messages API. A fresh backend is built
// per search invocation; it holds no state beyond its credentials.
type ClaudeBackend struct {
	APIKey    string
	Model     string
	MaxTokens int
	Client    *http.Client
}

// claudeRequest is the request body for the Claude Messages API.
type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system,omitempty"`
	Messages  []claudeMessage `json:"messages"`
}

// claudeMessage is a single message in the conversation.
type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeResponse is the response body from the Claude Messages API.
type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

// claudeContent is a content block in the response.
type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Complete sends the system instruction and user text to the Claude API
// and returns the first text block of the reply. An invalid or missing
// API key surfaces here as the API's authentication failure.
func (c *ClaudeBackend) Complete(ctx context.Context, system, user string) (string, error) {
	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	reqBody := claudeRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		System:    system,
		Messages: []claudeMessage{
			{Role: "user", Content: user},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Claude API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Claude API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding Claude response: %w", err)
	}

	for _, block := range cResp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in Claude API response")
}

// renderPrompt executes the system prompt template with the current date.
func renderPrompt(currentDate string) (string, error) {
	var buf bytes.Buffer
	err := interpretPromptTmpl.Execute(&buf, struct{ CurrentDate string }{CurrentDate: currentDate})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
