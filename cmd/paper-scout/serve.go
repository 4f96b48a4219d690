// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-scout/internal/arxiv"
	"github.com/pdiddy/paper-scout/internal/server"
	"github.com/pdiddy/paper-scout/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the arXiv lookup as an HTTP endpoint",
	Long: `Serve starts an HTTP server with a find-papers endpoint. Other
paper-scout instances can delegate their arXiv calls to it with
search --gateway. Failures are reported as {"error": ...} payloads.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = viper.GetString("server.addr")
		}

		cfg := types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: "paper-scout/" + version,
			},
		}

		r := server.New(arxiv.NewClient(cfg), os.Stderr)
		fmt.Fprintf(os.Stderr, "paper-scout serving on %s\n", addr)
		return r.Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config, \":8080\")")

	rootCmd.AddCommand(serveCmd)
}
