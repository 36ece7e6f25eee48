package main

import (
	"github.com/shelfside/book-reservations-go/demo/cmd/libraryctl/commands"
)

func main() {
	commands.Execute()
}
