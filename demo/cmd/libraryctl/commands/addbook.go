package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shelfside/book-reservations-go/core"
)

var (
	bookTitle       string
	bookISBN        string
	bookLanguage    string
	bookPublishedAt int
	bookPages       int
)

// addBookCmd adds a catalog entry
var addBookCmd = &cobra.Command{
	Use:   "add-book",
	Short: "Add a book to the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if bookTitle == "" {
			return fmt.Errorf("--title is required")
		}

		rt, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		now := core.ToTimestamp(time.Now())
		book := core.Book{
			ID:          uuid.New(),
			Title:       bookTitle,
			AuthorID:    uuid.New(),
			PublisherID: uuid.New(),
			ISBN:        bookISBN,
			Language:    bookLanguage,
			PublishedAt: bookPublishedAt,
			Pages:       bookPages,
			CreatedAt:   now,
			ModifiedAt:  now,
		}

		if err := rt.store.InsertBook(cmd.Context(), book); err != nil {
			return err
		}

		fmt.Printf("added book %s\n", book.ID)

		return nil
	},
}

func init() {
	addBookCmd.Flags().StringVar(&bookTitle, "title", "", "Book title")
	addBookCmd.Flags().StringVar(&bookISBN, "isbn", "", "ISBN")
	addBookCmd.Flags().StringVar(&bookLanguage, "language", "en", "Language code")
	addBookCmd.Flags().IntVar(&bookPublishedAt, "published", 0, "Publication year")
	addBookCmd.Flags().IntVar(&bookPages, "pages", 0, "Page count")

	rootCmd.AddCommand(addBookCmd)
}
