package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shelfside/book-reservations-go/features/command/assignreservation"
	"github.com/shelfside/book-reservations-go/features/command/completereservation"
)

// reservationCmd represents the reservation command group
var reservationCmd = &cobra.Command{
	Use:   "reservation",
	Short: "Return books and assign reservations at the desk",
}

var reservationReturnCmd = &cobra.Command{
	Use:   "return <book-id>",
	Short: "Check a returned book back in as a librarian",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseUUIDArg("book-id", args[0])
		if err != nil {
			return err
		}

		staffID, err := parseUUIDArg("--staff", staffFlag)
		if err != nil {
			return err
		}

		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		handler := completereservation.NewCommandHandler(rt.store, rt.notifier, completereservation.WithLogger(rt.logger))

		result, err := handler.Handle(cmd.Context(), completereservation.BuildCommand(bookID, staffID, time.Now()))
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

var reservationAssignCmd = &cobra.Command{
	Use:   "assign <book-id>",
	Short: "Reserve a book for a member directly at the desk as a librarian",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseUUIDArg("book-id", args[0])
		if err != nil {
			return err
		}

		memberID, err := parseUUIDArg("--member", memberFlag)
		if err != nil {
			return err
		}

		staffID, err := parseUUIDArg("--staff", staffFlag)
		if err != nil {
			return err
		}

		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		handler := assignreservation.NewCommandHandler(rt.store, rt.notifier, assignreservation.WithLogger(rt.logger))

		result, err := handler.Handle(cmd.Context(), assignreservation.BuildCommand(bookID, memberID, staffID, time.Now()))
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

func init() {
	reservationCmd.AddCommand(reservationReturnCmd)
	reservationCmd.AddCommand(reservationAssignCmd)
	rootCmd.AddCommand(reservationCmd)
}
