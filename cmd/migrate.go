package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and seed defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			log.Printf("database %s is up to date", a.cfg.DatabaseDSN)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
