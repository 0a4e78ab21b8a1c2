package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/iudanet/bookshelf/pkg/api"
)

func (c *Cli) runBooks(ctx context.Context) error {
	resp, err := c.apiClient.ListBooks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	c.io.Println("=== Book Catalog ===")
	c.io.Println()
	c.printBookList(resp.Books)

	return nil
}

func (c *Cli) runBook(ctx context.Context, args []string) error {
	isbn, err := requireArg(args, "isbn")
	if err != nil {
		return err
	}

	book, err := c.apiClient.GetBook(ctx, isbn)
	if err != nil {
		return fmt.Errorf("failed to get book: %w", err)
	}

	c.io.Printf("ISBN:   %s\n", book.ISBN)
	c.io.Printf("Title:  %s\n", book.Title)
	c.io.Printf("Author: %s\n", book.Author)
	c.io.Println()
	c.printReviews(book.Reviews)

	return nil
}

func (c *Cli) runAuthor(ctx context.Context, args []string) error {
	author, err := requireArg(args, "author")
	if err != nil {
		return err
	}

	resp, err := c.apiClient.GetBooksByAuthor(ctx, author)
	if err != nil {
		return fmt.Errorf("failed to get books by author: %w", err)
	}

	c.io.Printf("=== Books by %s ===\n", author)
	c.io.Println()
	c.printBookList(resp.Books)

	return nil
}

func (c *Cli) runTitle(ctx context.Context, args []string) error {
	title, err := requireArg(args, "title")
	if err != nil {
		return err
	}

	resp, err := c.apiClient.SearchBooksByTitle(ctx, title)
	if err != nil {
		return fmt.Errorf("failed to search books by title: %w", err)
	}

	c.io.Printf("=== Books matching %q ===\n", title)
	c.io.Println()
	c.printBookList(resp.Books)

	return nil
}

func (c *Cli) printBookList(books []api.Book) {
	if len(books) == 0 {
		c.io.Println("No books found.")
		return
	}

	for _, book := range books {
		c.io.Printf("  [%s] %s by %s (%d review(s))\n", book.ISBN, book.Title, book.Author, len(book.Reviews))
	}
	c.io.Println()
	c.io.Printf("Total: %d book(s)\n", len(books))
}

func (c *Cli) printReviews(reviews map[string]string) {
	if len(reviews) == 0 {
		c.io.Println("No reviews yet.")
		return
	}

	// Стабильный порядок вывода
	usernames := make([]string, 0, len(reviews))
	for username := range reviews {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	c.io.Println("Reviews:")
	for _, username := range usernames {
		c.io.Printf("  %s: %s\n", username, reviews[username])
	}
}
