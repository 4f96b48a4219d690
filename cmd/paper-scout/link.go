// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/pkg/types"
)

var linkCmd = &cobra.Command{
	Use:   "link <paper-url>",
	Short: "Acknowledge a direct arXiv paper link",
	Long: `Link accepts a direct arXiv paper URL and prints an acknowledgement
record. Link processing itself is not implemented; only the receipt is
produced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		receipt := types.LinkReceipt{
			Status:  "received",
			Link:    args[0],
			Message: "Paper link received successfully (processing not implemented)",
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(receipt)
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
}
