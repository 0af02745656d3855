/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/neocontrole/authserver/config"
	"github.com/neocontrole/authserver/internal/db"
	"github.com/neocontrole/authserver/internal/store"
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command. It is deliberately not reachable
// over HTTP: wiping the auth tables is an operator action, followed by a
// restart so startup seeding recreates the defaults.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Truncate the auth tables (irreversible)",
	Long: `Truncates auth_users and auth_estabelecimentos and resets identity
sequences. Restart the server afterwards so the default users and
establishments are reseeded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		ctx := cmd.Context()

		dbConn, err := db.Open(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect to auth database: %w", err)
		}
		defer func() {
			_ = dbConn.Close()
		}()

		fmt.Println("Connecting to the auth database...")
		if err := store.ResetAuthTables(ctx, dbConn); err != nil {
			return fmt.Errorf("reset auth tables: %w", err)
		}
		fmt.Println("Tables auth_users and auth_estabelecimentos truncated.")
		fmt.Println("Restart the server to reseed the default users and establishments.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
