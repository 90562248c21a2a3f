/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/songwish/apiserver/config"
	"github.com/songwish/apiserver/internal/db"
	"github.com/songwish/apiserver/internal/store"
	"github.com/spf13/cobra"
)

// indexesCmd represents the indexes command.
var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Manage database indexes",
}

var indexesEnsureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Create the collection indexes if missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		client, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("connect to mongodb: %w", err)
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		repo := store.NewUserRepository(db.Database(client, cfg))
		if err := repo.EnsureIndexes(cmd.Context()); err != nil {
			return fmt.Errorf("ensure indexes failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
	indexesCmd.AddCommand(indexesEnsureCmd)
}
