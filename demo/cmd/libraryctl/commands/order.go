package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shelfside/book-reservations-go/features/command/cancelorder"
	"github.com/shelfside/book-reservations-go/features/command/placeorder"
	"github.com/shelfside/book-reservations-go/features/command/processorder"
	"github.com/shelfside/book-reservations-go/features/command/refuseorder"
	"github.com/shelfside/book-reservations-go/shell"
)

var refuseReason string

// orderCmd represents the order command group
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place, cancel, process, and refuse book orders",
}

var orderPlaceCmd = &cobra.Command{
	Use:   "place <book-id>",
	Short: "Place an order for a book as a member",
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

		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		handler := placeorder.NewCommandHandler(rt.store, rt.notifier, placeorder.WithLogger(rt.logger))

		result, err := handler.Handle(cmd.Context(), placeorder.BuildCommand(bookID, memberID, time.Now()))
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

var orderCancelCmd = &cobra.Command{
	Use:   "cancel <book-id>",
	Short: "Cancel your order for a book as a member",
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

		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		handler := cancelorder.NewCommandHandler(rt.store, rt.notifier, cancelorder.WithLogger(rt.logger))

		result, err := handler.Handle(cmd.Context(), cancelorder.BuildCommand(bookID, memberID, time.Now()))
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

var orderProcessCmd = &cobra.Command{
	Use:   "process <book-id> <order-id>",
	Short: "Process a granted order as a librarian, issuing the book",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseUUIDArg("book-id", args[0])
		if err != nil {
			return err
		}

		orderID, err := parseUUIDArg("order-id", args[1])
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

		handler := processorder.NewCommandHandler(rt.store, rt.notifier, processorder.WithLogger(rt.logger))

		result, err := handler.Handle(cmd.Context(), processorder.BuildCommand(bookID, orderID, staffID, time.Now()))
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

var orderRefuseCmd = &cobra.Command{
	Use:   "refuse <book-id> <order-id>",
	Short: "Refuse an order as a librarian",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseUUIDArg("book-id", args[0])
		if err != nil {
			return err
		}

		orderID, err := parseUUIDArg("order-id", args[1])
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

		handler := refuseorder.NewCommandHandler(rt.store, rt.notifier, refuseorder.WithLogger(rt.logger))

		result, err := handler.Handle(cmd.Context(), refuseorder.BuildCommand(bookID, orderID, staffID, refuseReason, time.Now()))
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

func printResult(result shell.Result) {
	status := "OK"
	if result.IsRejection() {
		status = "REJECTED"
	}

	fmt.Printf("%s: %s\n", status, result.Message)

	if result.ReservationID != uuid.Nil {
		fmt.Printf("  reservation: %s\n", result.ReservationID)
	}

	if result.OrderID != uuid.Nil {
		fmt.Printf("  order:       %s\n", result.OrderID)
	}

	if result.ExtensionID != uuid.Nil {
		fmt.Printf("  extension:   %s\n", result.ExtensionID)
	}
}

func init() {
	orderRefuseCmd.Flags().StringVar(&refuseReason, "reason", "", "Reason shown to the member")

	orderCmd.AddCommand(orderPlaceCmd)
	orderCmd.AddCommand(orderCancelCmd)
	orderCmd.AddCommand(orderProcessCmd)
	orderCmd.AddCommand(orderRefuseCmd)
	rootCmd.AddCommand(orderCmd)
}
