package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bookshelf/internal/models"
	"github.com/iudanet/bookshelf/internal/server/storage/memory"
	"github.com/iudanet/bookshelf/pkg/api"
)

func testCatalog() *memory.Storage {
	return memory.New([]models.Book{
		{ISBN: "1", Title: "Let Us C", Author: "Yashwant", Reviews: map[string]string{}},
		{ISBN: "2", Title: "Pride and Prejudice", Author: "Jane Austen", Reviews: map[string]string{}},
		{ISBN: "3", Title: "Emma", Author: "Jane Austen", Reviews: map[string]string{}},
	})
}

func TestBooksHandler_ListBooks(t *testing.T) {
	handler := NewBooksHandler(setupTestLogger(), testCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	w := httptest.NewRecorder()
	handler.ListBooks(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.BookListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Len(t, response.Books, 3)
	assert.Equal(t, "1", response.Books[0].ISBN)
	assert.Equal(t, "Let Us C", response.Books[0].Title)
}

func TestBooksHandler_GetBook(t *testing.T) {
	handler := NewBooksHandler(setupTestLogger(), testCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/2", nil)
	req.SetPathValue("isbn", "2")
	w := httptest.NewRecorder()
	handler.GetBook(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var book api.Book
	require.NoError(t, json.NewDecoder(w.Body).Decode(&book))
	assert.Equal(t, "Pride and Prejudice", book.Title)
	assert.Equal(t, "Jane Austen", book.Author)
}

func TestBooksHandler_GetBook_NotFound(t *testing.T) {
	handler := NewBooksHandler(setupTestLogger(), testCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/999", nil)
	req.SetPathValue("isbn", "999")
	w := httptest.NewRecorder()
	handler.GetBook(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooksHandler_GetBooksByAuthor(t *testing.T) {
	handler := NewBooksHandler(setupTestLogger(), testCatalog())

	tests := []struct {
		name       string
		author     string
		wantStatus int
		wantCount  int
	}{
		{"exact match", "Jane Austen", http.StatusOK, 2},
		{"case insensitive", "jane austen", http.StatusOK, 2},
		{"partial name does not match", "Jane", http.StatusNotFound, 0},
		{"unknown author", "Nobody", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/books/author/x", nil)
			req.SetPathValue("author", tt.author)
			w := httptest.NewRecorder()
			handler.GetBooksByAuthor(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var response api.BookListResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
				assert.Len(t, response.Books, tt.wantCount)
			}
		})
	}
}

func TestBooksHandler_SearchBooksByTitle(t *testing.T) {
	handler := NewBooksHandler(setupTestLogger(), testCatalog())

	tests := []struct {
		name       string
		title      string
		wantStatus int
		wantCount  int
	}{
		{"substring match", "pride", http.StatusOK, 1},
		{"case insensitive", "EMMA", http.StatusOK, 1},
		{"common substring", "e", http.StatusOK, 3},
		{"no match", "zzz", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/books/title/x", nil)
			req.SetPathValue("title", tt.title)
			w := httptest.NewRecorder()
			handler.SearchBooksByTitle(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var response api.BookListResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
				assert.Len(t, response.Books, tt.wantCount)
			}
		})
	}
}

func TestBooksHandler_GetReviews(t *testing.T) {
	catalog := testCatalog()
	handler := NewBooksHandler(setupTestLogger(), catalog)

	_, err := catalog.UpsertReview(context.Background(), "1", "alice", "great book")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/1/reviews", nil)
	req.SetPathValue("isbn", "1")
	w := httptest.NewRecorder()
	handler.GetReviews(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response api.ReviewsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "1", response.ISBN)
	assert.Equal(t, map[string]string{"alice": "great book"}, response.Reviews)
}

func TestBooksHandler_GetReviews_NotFound(t *testing.T) {
	handler := NewBooksHandler(setupTestLogger(), testCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/999/reviews", nil)
	req.SetPathValue("isbn", "999")
	w := httptest.NewRecorder()
	handler.GetReviews(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
