// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "Manage tenant databases",
}

var listDatabasesCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenant databases for the current API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var resp struct {
			Databases []struct {
				TenantID    string `json:"tenant_id"`
				DatabaseURL string `json:"database_url"`
				Status      string `json:"status"`
				Source      string `json:"source"`
			} `json:"databases"`
			Billing struct {
				Plan        string `json:"plan"`
				ActiveCount int    `json:"active_count"`
				HardCap     int    `json:"hard_cap"`
			} `json:"billing"`
		}
		if err := client.do(cmd.Context(), "GET", "/api/v0/databases", nil, &resp); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TENANT\tSTATUS\tSOURCE\tDATABASE URL")
		for _, d := range resp.Databases {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.TenantID, d.Status, d.Source, d.DatabaseURL)
		}
		w.Flush()
		fmt.Printf("\nPlan: %s, active: %d\n", resp.Billing.Plan, resp.Billing.ActiveCount)
		return nil
	},
}

var createDatabaseCmd = &cobra.Command{
	Use:   "create [tenant-id]",
	Short: "Provision a tenant database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		mode, _ := cmd.Flags().GetString("mode")
		dbURL, _ := cmd.Flags().GetString("database-url")
		authToken, _ := cmd.Flags().GetString("auth-token")

		req := map[string]interface{}{
			"tenant_id": args[0],
			"mode":      mode,
		}
		if dbURL != "" {
			req["database_url"] = dbURL
		}
		if authToken != "" {
			req["auth_token"] = authToken
		}

		var resp struct {
			TenantID    string `json:"tenant_id"`
			DatabaseURL string `json:"database_url"`
			Status      string `json:"status"`
		}
		if err := client.do(cmd.Context(), "POST", "/api/v0/databases", req, &resp); err != nil {
			return err
		}

		fmt.Printf("Database ready for tenant %s: %s (%s)\n", resp.TenantID, resp.DatabaseURL, resp.Status)
		return nil
	},
}

var disableDatabaseCmd = &cobra.Command{
	Use:   "disable [tenant-id]",
	Short: "Disable a tenant database mapping",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		path := "/api/v0/databases/" + url.PathEscape(args[0])
		if err := client.do(cmd.Context(), "DELETE", path, nil, nil); err != nil {
			return err
		}

		fmt.Printf("Database disabled for tenant %s\n", args[0])
		return nil
	},
}

func init() {
	createDatabaseCmd.Flags().String("mode", "provision", "provision a new database or attach an existing one (provision|attach)")
	createDatabaseCmd.Flags().String("database-url", "", "existing database URL (attach mode)")
	createDatabaseCmd.Flags().String("auth-token", "", "existing database auth token (attach mode)")

	databasesCmd.AddCommand(listDatabasesCmd)
	databasesCmd.AddCommand(createDatabaseCmd)
	databasesCmd.AddCommand(disableDatabaseCmd)
	rootCmd.AddCommand(databasesCmd)
}
