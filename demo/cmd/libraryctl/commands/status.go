package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfside/book-reservations-go/features/query/bookavailability"
	"github.com/shelfside/book-reservations-go/features/query/memberreservations"
	"github.com/shelfside/book-reservations-go/features/query/queuedorders"
)

// statusCmd shows a book's availability view
var statusCmd = &cobra.Command{
	Use:   "status <book-id>",
	Short: "Show a book's availability, due date, and queue length",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseUUIDArg("book-id", args[0])
		if err != nil {
			return err
		}

		memberID, err := parseOptionalUUIDArg("--member", memberFlag)
		if err != nil {
			return err
		}

		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		handler := bookavailability.NewQueryHandler(rt.store)

		view, err := handler.Handle(cmd.Context(), bookavailability.Query{BookID: bookID, MemberID: memberID})
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", view.Title, view.ISBN)
		fmt.Printf("  available:    %v\n", view.IsAvailable)
		fmt.Printf("  booked:       %v\n", view.IsBooked)
		fmt.Printf("  issued:       %v\n", view.IsIssued)

		if view.Term != nil {
			fmt.Printf("  due:          %s\n", view.Term.Format("2006-01-02"))
		}

		if view.OverdueDays > 0 {
			fmt.Printf("  overdue days: %d\n", view.OverdueDays)
		}

		fmt.Printf("  in queue:     %d\n", view.AmountInQueue)

		if view.IsBookedByMember {
			fmt.Printf("  held by you (extensions left: %d)\n", view.ExtensionsAvailable)
		}

		if view.IsQueuedByMember {
			fmt.Println("  you are in the queue")
		}

		return nil
	},
}

// queueCmd lists a book's waiting orders
var queueCmd = &cobra.Command{
	Use:   "queue <book-id>",
	Short: "List a book's waiting orders in promotion order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseUUIDArg("book-id", args[0])
		if err != nil {
			return err
		}

		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		handler := queuedorders.NewQueryHandler(rt.store)

		queue, err := handler.Handle(cmd.Context(), queuedorders.Query{BookID: bookID})
		if err != nil {
			return err
		}

		if queue.Count == 0 {
			fmt.Println("queue is empty")
			return nil
		}

		for _, entry := range queue.Entries {
			fmt.Printf("%2d. order %s  member %s  placed %s\n",
				entry.Position, entry.OrderID, entry.MemberID, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		return nil
	},
}

// myBooksCmd lists the member's active reservations
var myBooksCmd = &cobra.Command{
	Use:   "my-books",
	Short: "List your active reservations as a member",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		memberID, err := parseUUIDArg("--member", memberFlag)
		if err != nil {
			return err
		}

		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		handler := memberreservations.NewQueryHandler(rt.store)

		view, err := handler.Handle(cmd.Context(), memberreservations.Query{MemberID: memberID})
		if err != nil {
			return err
		}

		if view.Count == 0 {
			fmt.Println("no active reservations")
			return nil
		}

		for _, reservation := range view.Reservations {
			line := fmt.Sprintf("book %s  status %s", reservation.BookID, reservation.Status)

			if reservation.Term != nil {
				line += fmt.Sprintf("  due %s", reservation.Term.Format("2006-01-02"))
			}

			if reservation.OverdueDays > 0 {
				line += fmt.Sprintf("  OVERDUE %d days", reservation.OverdueDays)
			}

			fmt.Println(line)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(myBooksCmd)
}
