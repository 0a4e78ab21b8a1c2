package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
)

// ListBooks retrieves the whole catalog ordered by ISBN
func (s *Storage) ListBooks(ctx context.Context) ([]models.Book, error) {
	query := `SELECT isbn, title, author FROM books ORDER BY isbn`

	return s.queryBooks(ctx, query)
}

// GetBook retrieves a book by ISBN
func (s *Storage) GetBook(ctx context.Context, isbn string) (*models.Book, error) {
	query := `SELECT isbn, title, author FROM books WHERE isbn = ?`

	book := &models.Book{}
	err := s.db.QueryRowContext(ctx, query, isbn).Scan(
		&book.ISBN,
		&book.Title,
		&book.Author,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	reviews, err := s.loadReviews(ctx, book.ISBN)
	if err != nil {
		return nil, err
	}
	book.Reviews = reviews

	return book, nil
}

// GetBooksByAuthor retrieves books whose author matches exactly, ignoring case
func (s *Storage) GetBooksByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	query := `SELECT isbn, title, author FROM books WHERE lower(author) = lower(?) ORDER BY isbn`

	books, err := s.queryBooks(ctx, query, author)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, storage.ErrBookNotFound
	}

	return books, nil
}

// SearchBooksByTitle retrieves books whose title contains the query, ignoring case
func (s *Storage) SearchBooksByTitle(ctx context.Context, title string) ([]models.Book, error) {
	// instr вместо LIKE, чтобы не экранировать метасимволы шаблона
	query := `SELECT isbn, title, author FROM books WHERE instr(lower(title), lower(?)) > 0 ORDER BY isbn`

	books, err := s.queryBooks(ctx, query, title)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, storage.ErrBookNotFound
	}

	return books, nil
}

// GetReviews retrieves the reviews map of a book
func (s *Storage) GetReviews(ctx context.Context, isbn string) (map[string]string, error) {
	if err := s.bookExists(ctx, isbn); err != nil {
		return nil, err
	}

	return s.loadReviews(ctx, isbn)
}

// UpsertReview sets reviews[username] = review and returns the resulting map
func (s *Storage) UpsertReview(ctx context.Context, isbn, username, review string) (map[string]string, error) {
	if err := s.bookExists(ctx, isbn); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO reviews (isbn, username, review)
		VALUES (?, ?, ?)
		ON CONFLICT (isbn, username) DO UPDATE SET review = excluded.review
	`

	if _, err := s.db.ExecContext(ctx, query, isbn, username, review); err != nil {
		return nil, fmt.Errorf("failed to upsert review: %w", err)
	}

	return s.loadReviews(ctx, isbn)
}

// DeleteReview removes the caller's review and returns the remaining map
func (s *Storage) DeleteReview(ctx context.Context, isbn, username string) (map[string]string, error) {
	if err := s.bookExists(ctx, isbn); err != nil {
		return nil, err
	}

	query := `DELETE FROM reviews WHERE isbn = ? AND username = ?`

	result, err := s.db.ExecContext(ctx, query, isbn, username)
	if err != nil {
		return nil, fmt.Errorf("failed to delete review: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrReviewNotFound
	}

	return s.loadReviews(ctx, isbn)
}

// bookExists возвращает ErrBookNotFound, если ISBN отсутствует в каталоге
func (s *Storage) bookExists(ctx context.Context, isbn string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM books WHERE isbn = ?`, isbn).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrBookNotFound
		}
		return fmt.Errorf("failed to check book existence: %w", err)
	}
	return nil
}

// queryBooks выполняет запрос каталога и подгружает рецензии каждой книги
func (s *Storage) queryBooks(ctx context.Context, query string, args ...any) ([]models.Book, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ISBN, &book.Title, &book.Author); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	for i := range books {
		reviews, err := s.loadReviews(ctx, books[i].ISBN)
		if err != nil {
			return nil, err
		}
		books[i].Reviews = reviews
	}

	return books, nil
}

// loadReviews загружает карту рецензий одной книги
func (s *Storage) loadReviews(ctx context.Context, isbn string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username, review FROM reviews WHERE isbn = ?`, isbn)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make(map[string]string)
	for rows.Next() {
		var username, review string
		if err := rows.Scan(&username, &review); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews[username] = review
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, nil
}
