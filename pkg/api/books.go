package api

// Book представляет книгу каталога в API формате
type Book struct {
	ISBN    string            `json:"isbn"`    // ключ каталога
	Title   string            `json:"title"`   // название книги
	Author  string            `json:"author"`  // автор книги
	Reviews map[string]string `json:"reviews"` // рецензии: username -> текст
}

// BookListResponse представляет список книг каталога
type BookListResponse struct {
	Books []Book `json:"books"` // книги, отсортированные по ISBN
}

// ReviewRequest представляет запрос на добавление или изменение рецензии
// Имя автора рецензии в запросе НЕ передается: оно всегда берется из сессии
type ReviewRequest struct {
	Review string `json:"review"` // текст рецензии
}

// ReviewsResponse представляет рецензии одной книги
type ReviewsResponse struct {
	ISBN    string            `json:"isbn"`              // ключ каталога
	Reviews map[string]string `json:"reviews"`           // рецензии: username -> текст
	Message string            `json:"message,omitempty"` // сообщение о результате операции
}
