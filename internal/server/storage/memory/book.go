package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
)

// ListBooks retrieves the whole catalog ordered by ISBN
func (s *Storage) ListBooks(ctx context.Context) ([]models.Book, error) {
	s.booksMu.RLock()
	defer s.booksMu.RUnlock()

	books := make([]models.Book, 0, len(s.books))
	for _, book := range s.books {
		books = append(books, s.snapshot(book))
	}

	sortByISBN(books)
	return books, nil
}

// GetBook retrieves a book by ISBN
func (s *Storage) GetBook(ctx context.Context, isbn string) (*models.Book, error) {
	s.booksMu.RLock()
	defer s.booksMu.RUnlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, storage.ErrBookNotFound
	}

	result := s.snapshot(book)
	return &result, nil
}

// GetBooksByAuthor retrieves books whose author matches exactly, ignoring case
func (s *Storage) GetBooksByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	s.booksMu.RLock()
	defer s.booksMu.RUnlock()

	var books []models.Book
	for _, book := range s.books {
		if strings.EqualFold(book.Author, author) {
			books = append(books, s.snapshot(book))
		}
	}

	if len(books) == 0 {
		return nil, storage.ErrBookNotFound
	}

	sortByISBN(books)
	return books, nil
}

// SearchBooksByTitle retrieves books whose title contains the query, ignoring case
func (s *Storage) SearchBooksByTitle(ctx context.Context, title string) ([]models.Book, error) {
	s.booksMu.RLock()
	defer s.booksMu.RUnlock()

	query := strings.ToLower(title)

	var books []models.Book
	for _, book := range s.books {
		if strings.Contains(strings.ToLower(book.Title), query) {
			books = append(books, s.snapshot(book))
		}
	}

	if len(books) == 0 {
		return nil, storage.ErrBookNotFound
	}

	sortByISBN(books)
	return books, nil
}

// GetReviews retrieves the reviews map of a book
func (s *Storage) GetReviews(ctx context.Context, isbn string) (map[string]string, error) {
	s.booksMu.RLock()
	defer s.booksMu.RUnlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, storage.ErrBookNotFound
	}

	return book.CloneReviews(), nil
}

// UpsertReview sets reviews[username] = review and returns the resulting map
// Повторная запись того же пользователя перезаписывает его рецензию,
// ключом всегда служит username вызывающего
func (s *Storage) UpsertReview(ctx context.Context, isbn, username, review string) (map[string]string, error) {
	s.booksMu.Lock()
	defer s.booksMu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, storage.ErrBookNotFound
	}

	book.Reviews[username] = review
	return book.CloneReviews(), nil
}

// DeleteReview removes the caller's review and returns the remaining map
func (s *Storage) DeleteReview(ctx context.Context, isbn, username string) (map[string]string, error) {
	s.booksMu.Lock()
	defer s.booksMu.Unlock()

	book, ok := s.books[isbn]
	if !ok {
		return nil, storage.ErrBookNotFound
	}

	if _, ok := book.Reviews[username]; !ok {
		return nil, storage.ErrReviewNotFound
	}

	delete(book.Reviews, username)
	return book.CloneReviews(), nil
}

// snapshot возвращает копию книги с копией карты рецензий
func (s *Storage) snapshot(book *models.Book) models.Book {
	result := *book
	result.Reviews = book.CloneReviews()
	return result
}

func sortByISBN(books []models.Book) {
	sort.Slice(books, func(i, j int) bool {
		return books[i].ISBN < books[j].ISBN
	})
}
