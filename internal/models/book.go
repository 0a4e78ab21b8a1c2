package models

// Book представляет книгу каталога
// Reviews - единственное изменяемое поле; меняется только через review-операции
type Book struct {
	ISBN    string            `json:"isbn"`    // ключ каталога
	Title   string            `json:"title"`   // название книги
	Author  string            `json:"author"`  // автор книги
	Reviews map[string]string `json:"reviews"` // рецензии: username -> текст
}

// CloneReviews возвращает копию карты рецензий
// Хранилища отдают наружу только копии, чтобы вызывающий код
// не мог мутировать состояние каталога мимо review-операций
func (b *Book) CloneReviews() map[string]string {
	reviews := make(map[string]string, len(b.Reviews))
	for username, text := range b.Reviews {
		reviews[username] = text
	}
	return reviews
}
