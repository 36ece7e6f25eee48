package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shelfside/book-reservations-go/features/command/approveextension"
	"github.com/shelfside/book-reservations-go/features/command/cancelextension"
	"github.com/shelfside/book-reservations-go/features/command/refuseextension"
	"github.com/shelfside/book-reservations-go/features/command/requestextension"
)

// extensionCmd represents the extension command group
var extensionCmd = &cobra.Command{
	Use:   "extension",
	Short: "Request, cancel, approve, and refuse term extensions",
}

var extensionRequestCmd = &cobra.Command{
	Use:   "request <book-id>",
	Short: "Request more time with an issued book as a member",
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

		handler := requestextension.NewCommandHandler(rt.store, rt.notifier, requestextension.WithLogger(rt.logger))

		result, err := handler.Handle(cmd.Context(), requestextension.BuildCommand(bookID, memberID, time.Now()))
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

var extensionCancelCmd = &cobra.Command{
	Use:   "cancel <book-id>",
	Short: "Withdraw your pending extension request as a member",
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

		handler := cancelextension.NewCommandHandler(rt.store, rt.notifier, cancelextension.WithLogger(rt.logger))

		result, err := handler.Handle(cmd.Context(), cancelextension.BuildCommand(bookID, memberID, time.Now()))
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

var extensionApproveCmd = &cobra.Command{
	Use:   "approve <book-id> <extension-id>",
	Short: "Approve an extension request as a librarian",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseUUIDArg("book-id", args[0])
		if err != nil {
			return err
		}

		extensionID, err := parseUUIDArg("extension-id", args[1])
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

		handler := approveextension.NewCommandHandler(rt.store, rt.notifier, approveextension.WithLogger(rt.logger))

		result, err := handler.Handle(cmd.Context(), approveextension.BuildCommand(bookID, extensionID, staffID, time.Now()))
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

var extensionRefuseCmd = &cobra.Command{
	Use:   "refuse <book-id> <extension-id>",
	Short: "Refuse an extension request as a librarian",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseUUIDArg("book-id", args[0])
		if err != nil {
			return err
		}

		extensionID, err := parseUUIDArg("extension-id", args[1])
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

		handler := refuseextension.NewCommandHandler(rt.store, rt.notifier, refuseextension.WithLogger(rt.logger))

		result, err := handler.Handle(cmd.Context(), refuseextension.BuildCommand(bookID, extensionID, staffID, time.Now()))
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

func init() {
	extensionCmd.AddCommand(extensionRequestCmd)
	extensionCmd.AddCommand(extensionCancelCmd)
	extensionCmd.AddCommand(extensionApproveCmd)
	extensionCmd.AddCommand(extensionRefuseCmd)
	rootCmd.AddCommand(extensionCmd)
}
