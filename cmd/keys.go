// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage API keys",
}

var rotateKeyCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate the current API key",
	Long: `Rotate the current API key. All tenant database mappings are carried over
to the new key. The new key is printed exactly once and cannot be retrieved again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var resp struct {
			APIKey       string `json:"api_key"`
			KeyPrefix    string `json:"key_prefix"`
			MappingCount int    `json:"mapping_count"`
		}
		if err := client.do(cmd.Context(), "POST", "/api/v0/keys/rotate", nil, &resp); err != nil {
			return err
		}

		fmt.Printf("New API key: %s\n", resp.APIKey)
		fmt.Printf("Carried %d tenant database mappings to the new key\n", resp.MappingCount)
		return nil
	},
}

func init() {
	keysCmd.AddCommand(rotateKeyCmd)
	rootCmd.AddCommand(keysCmd)
}
