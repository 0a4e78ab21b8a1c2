package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage"
	"github.com/iudanet/bookshelf/pkg/api"
)

// BooksHandler обрабатывает анонимные запросы чтения каталога
type BooksHandler struct {
	logger      *slog.Logger
	bookStorage storage.BookStorage
}

// NewBooksHandler создает новый handler каталога
func NewBooksHandler(logger *slog.Logger, bookStorage storage.BookStorage) *BooksHandler {
	return &BooksHandler{
		logger:      logger,
		bookStorage: bookStorage,
	}
}

// ListBooks обрабатывает GET /api/v1/books
// Полный список книг каталога
func (h *BooksHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	books, err := h.bookStorage.ListBooks(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list books", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.BookListResponse{Books: toAPIBooks(books)}, http.StatusOK)
}

// GetBook обрабатывает GET /api/v1/books/{isbn}
// Книга по ISBN
func (h *BooksHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isbn := r.PathValue("isbn")

	book, err := h.bookStorage.GetBook(ctx, isbn)
	if err != nil {
		if errors.Is(err, storage.ErrBookNotFound) {
			h.sendError(w, "book not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get book", slog.String("isbn", isbn), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, toAPIBook(*book), http.StatusOK)
}

// GetBooksByAuthor обрабатывает GET /api/v1/books/author/{author}
// Книги автора (точное совпадение без учета регистра)
func (h *BooksHandler) GetBooksByAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	author := r.PathValue("author")

	books, err := h.bookStorage.GetBooksByAuthor(ctx, author)
	if err != nil {
		if errors.Is(err, storage.ErrBookNotFound) {
			h.sendError(w, "no books found by this author", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get books by author", slog.String("author", author), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.BookListResponse{Books: toAPIBooks(books)}, http.StatusOK)
}

// SearchBooksByTitle обрабатывает GET /api/v1/books/title/{title}
// Книги по подстроке названия (без учета регистра)
func (h *BooksHandler) SearchBooksByTitle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	title := r.PathValue("title")

	books, err := h.bookStorage.SearchBooksByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, storage.ErrBookNotFound) {
			h.sendError(w, "no books found with this title", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to search books by title", slog.String("title", title), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.BookListResponse{Books: toAPIBooks(books)}, http.StatusOK)
}

// GetReviews обрабатывает GET /api/v1/books/{isbn}/reviews
// Рецензии книги; чтение доступно анонимно
func (h *BooksHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isbn := r.PathValue("isbn")

	reviews, err := h.bookStorage.GetReviews(ctx, isbn)
	if err != nil {
		if errors.Is(err, storage.ErrBookNotFound) {
			h.sendError(w, "book not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get reviews", slog.String("isbn", isbn), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.ReviewsResponse{ISBN: isbn, Reviews: reviews}, http.StatusOK)
}

func (h *BooksHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	sendJSON(h.logger, w, data, statusCode)
}

func (h *BooksHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	sendError(h.logger, w, message, statusCode)
}

// toAPIBook конвертирует книгу в API формат
func toAPIBook(book models.Book) api.Book {
	return api.Book{
		ISBN:    book.ISBN,
		Title:   book.Title,
		Author:  book.Author,
		Reviews: book.Reviews,
	}
}

func toAPIBooks(books []models.Book) []api.Book {
	result := make([]api.Book, 0, len(books))
	for _, book := range books {
		result = append(result, toAPIBook(book))
	}
	return result
}
