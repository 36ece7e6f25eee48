package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	memberFlag string
	staffFlag  string
	verbose    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "libraryctl",
	Short: "libraryctl - book reservation management from the command line",
	Long: `libraryctl drives the book reservation engine against a PostgreSQL
database: members place and cancel orders and request term extensions,
librarians process, refuse, and return books.

Connection settings come from LIBRARY_DB_* environment variables
(see the postgresconfig package for defaults).`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&memberFlag, "member", "", "Member ID (UUID) acting on the book")
	rootCmd.PersistentFlags().StringVar(&staffFlag, "staff", "", "Staff ID (UUID) for librarian operations")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output including SQL statements")
}
