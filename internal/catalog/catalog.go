// Package catalog содержит стартовый каталог книг
// Каталог загружается при старте сервера и дальше мутируется
// только через review-операции
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/iudanet/bookshelf/internal/models"
)

//go:embed books.json
var booksJSON []byte

// seedBook - формат записи в books.json (ISBN служит ключом карты)
type seedBook struct {
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// Load разбирает встроенный каталог и возвращает книги,
// отсортированные по ISBN
func Load() ([]models.Book, error) {
	var seed map[string]seedBook
	if err := json.Unmarshal(booksJSON, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}

	books := make([]models.Book, 0, len(seed))
	for isbn, sb := range seed {
		reviews := sb.Reviews
		if reviews == nil {
			reviews = make(map[string]string)
		}
		books = append(books, models.Book{
			ISBN:    isbn,
			Title:   sb.Title,
			Author:  sb.Author,
			Reviews: reviews,
		})
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].ISBN < books[j].ISBN
	})

	return books, nil
}
