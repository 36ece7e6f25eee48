package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfside/book-reservations-go/postgresstore"
)

// initDBCmd creates the store's tables
var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the store's tables and indexes if they do not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if _, err := rt.pool.Exec(cmd.Context(), postgresstore.Schema); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}

		fmt.Println("schema applied")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}
