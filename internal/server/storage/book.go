package storage

import (
	"context"

	"github.com/iudanet/bookshelf/internal/models"
)

// BookStorage defines interface for the book catalog
// Reads are anonymous; review mutation is the only write path and the
// review key is always the authenticated caller's username
type BookStorage interface {
	// ListBooks retrieves the whole catalog ordered by ISBN
	ListBooks(ctx context.Context) ([]models.Book, error)

	// GetBook retrieves a book by ISBN
	// Returns ErrBookNotFound if ISBN is unknown
	GetBook(ctx context.Context, isbn string) (*models.Book, error)

	// GetBooksByAuthor retrieves books whose author matches exactly,
	// ignoring case. Returns ErrBookNotFound when nothing matches
	GetBooksByAuthor(ctx context.Context, author string) ([]models.Book, error)

	// SearchBooksByTitle retrieves books whose title contains the query,
	// ignoring case. Returns ErrBookNotFound when nothing matches
	SearchBooksByTitle(ctx context.Context, title string) ([]models.Book, error)

	// GetReviews retrieves the reviews map of a book
	// Returns ErrBookNotFound if ISBN is unknown
	GetReviews(ctx context.Context, isbn string) (map[string]string, error)

	// UpsertReview sets reviews[username] = review (insert-or-overwrite)
	// and returns the resulting reviews map
	// Returns ErrBookNotFound if ISBN is unknown
	UpsertReview(ctx context.Context, isbn, username, review string) (map[string]string, error)

	// DeleteReview removes the caller's review and returns the remaining map
	// Returns ErrBookNotFound if ISBN is unknown,
	// ErrReviewNotFound if the caller has no review for the book
	DeleteReview(ctx context.Context, isbn, username string) (map[string]string, error)
}
