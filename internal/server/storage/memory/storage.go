// Package memory реализует интерфейсы хранилищ на картах в памяти
// Состояние живет ровно столько, сколько живет процесс
package memory

import (
	"sync"

	"github.com/iudanet/bookshelf/internal/models"
)

// Storage represents in-memory storage implementation
// Каждая группа данных защищена собственным RWMutex: конкурентные
// мутации каталога, пользователей и сессий сериализуются независимо
type Storage struct {
	usersMu    sync.RWMutex
	users      map[string]*models.User // username -> User
	sessionsMu sync.RWMutex
	sessions   map[string]*models.Session // session ID -> Session
	booksMu    sync.RWMutex
	books      map[string]*models.Book // isbn -> Book
}

// New creates a new in-memory storage instance preloaded with the given catalog
func New(seed []models.Book) *Storage {
	books := make(map[string]*models.Book, len(seed))
	for i := range seed {
		book := seed[i]
		if book.Reviews == nil {
			book.Reviews = make(map[string]string)
		}
		books[book.ISBN] = &book
	}

	return &Storage{
		users:    make(map[string]*models.User),
		sessions: make(map[string]*models.Session),
		books:    books,
	}
}
