// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-scout/internal/arxiv"
	"github.com/pdiddy/paper-scout/internal/httputil"
	"github.com/pdiddy/paper-scout/internal/interpret"
	"github.com/pdiddy/paper-scout/internal/search"
	"github.com/pdiddy/paper-scout/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [free-text request]",
	Short: "Search arXiv with a natural-language request",
	Long: `Search interprets a free-text research request, queries arXiv with the
extracted terms, and prints the results ranked by relevance.

With --query-file, a previously saved search is reloaded and its stored
results re-ranked without calling the model or arXiv.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")
		outPath, _ := cmd.Flags().GetString("out")
		queryFile, _ := cmd.Flags().GetString("query-file")
		gatewayURL, _ := cmd.Flags().GetString("gateway")
		maxResults, _ := cmd.Flags().GetInt("max-results")
		model, _ := cmd.Flags().GetString("model")
		apiKey, _ := cmd.Flags().GetString("api-key")

		if queryFile != "" {
			qf, err := search.ReadQueryFile(queryFile)
			if err != nil {
				return err
			}
			return emit(qf.Rerank(), jsonOut, "", "")
		}

		if len(args) == 0 {
			return fmt.Errorf("provide a free-text request or --query-file")
		}
		userQuery := args[0]

		searchCfg := types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: "paper-scout/" + version,
			},
		}

		if model == "" {
			model = viper.GetString("ai.model")
		}
		backend := &interpret.ClaudeBackend{
			APIKey:    resolveAPIKey(apiKey),
			Model:     model,
			MaxTokens: viper.GetInt("ai.max_tokens"),
			Client:    httputil.NewClient(searchCfg.HTTPConfig),
		}

		var gw arxiv.Gateway
		if gatewayURL != "" {
			gw = arxiv.NewRemoteGateway(gatewayURL, searchCfg)
		} else {
			gw = arxiv.NewClient(searchCfg)
		}

		out, err := search.Run(cmd.Context(), backend, gw, userQuery, time.Now(), os.Stderr)
		if err != nil {
			return err
		}

		if maxResults > 0 && len(out.Papers) > maxResults {
			out.Papers = out.Papers[:maxResults]
		}

		return emit(out, jsonOut, outPath, userQuery)
	},
}

// resolveAPIKey picks the model API key: flag, then config, then
// environment, then the .secrets/ directory. An empty key is passed
// through; the model API rejects it with its own authentication error.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := viper.GetString("ai.api_key"); v != "" {
		return v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		return v
	}
	return secretDefault("anthropic-api-key", "")
}

// emit prints the output and optionally saves it to a query file.
func emit(out search.Output, jsonOut bool, outPath, userQuery string) error {
	if jsonOut {
		if err := search.FormatJSON(out, os.Stdout); err != nil {
			return err
		}
	} else {
		search.FormatTable(out, os.Stdout)
	}

	if outPath != "" {
		if err := search.WriteQueryFile(outPath, userQuery, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved search to %s\n", outPath)
	}
	return nil
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("out", "", "save the search and results to a YAML query file")
	searchCmd.Flags().String("query-file", "", "reload a saved query file instead of searching")
	searchCmd.Flags().String("gateway", "", "delegate the arXiv call to a paper-scout server at this URL")
	searchCmd.Flags().Int("max-results", 0, "cap the number of results printed")
	searchCmd.Flags().String("model", "", "model identifier for query interpretation")
	searchCmd.Flags().String("api-key", "", "model API key (overrides config, env, and .secrets/)")

	rootCmd.AddCommand(searchCmd)
}
