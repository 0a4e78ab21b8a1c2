package server

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/bookshelf/internal/server/handlers"
	"github.com/iudanet/bookshelf/internal/server/middleware"
	"github.com/iudanet/bookshelf/internal/server/storage"
)

// Deps содержит все зависимости HTTP-сервера
type Deps struct {
	Logger    *slog.Logger
	Users     storage.UserStorage
	Sessions  storage.SessionStorage
	Books     storage.BookStorage
	JWTConfig handlers.JWTConfig
	Version   string
}

// NewRouter собирает все маршруты и middleware в один http.Handler.
// Каталог доступен анонимно, мутации отзывов требуют Bearer токен.
func NewRouter(deps Deps) http.Handler {
	authHandler := handlers.NewAuthHandler(deps.Logger, deps.Users, deps.Sessions, deps.JWTConfig)
	booksHandler := handlers.NewBooksHandler(deps.Logger, deps.Books)
	reviewsHandler := handlers.NewReviewsHandler(deps.Logger, deps.Books)
	healthHandler := handlers.NewHealthHandler(deps.Logger, deps.Version)

	requireAuth := middleware.AuthMiddleware(deps.Logger, deps.JWTConfig, deps.Sessions)

	mux := http.NewServeMux()

	// Аутентификация
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("POST /api/v1/auth/logout", requireAuth(http.HandlerFunc(authHandler.Logout)))

	// Каталог (анонимный доступ)
	mux.HandleFunc("GET /api/v1/books", booksHandler.ListBooks)
	mux.HandleFunc("GET /api/v1/books/{isbn}", booksHandler.GetBook)
	mux.HandleFunc("GET /api/v1/books/author/{author}", booksHandler.GetBooksByAuthor)
	mux.HandleFunc("GET /api/v1/books/title/{title}", booksHandler.SearchBooksByTitle)
	mux.HandleFunc("GET /api/v1/books/{isbn}/reviews", booksHandler.GetReviews)

	// Отзывы (только для аутентифицированных пользователей)
	mux.Handle("PUT /api/v1/books/{isbn}/reviews", requireAuth(http.HandlerFunc(reviewsHandler.UpsertReview)))
	mux.Handle("DELETE /api/v1/books/{isbn}/reviews", requireAuth(http.HandlerFunc(reviewsHandler.DeleteReview)))

	// Health check
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Цепочка middleware: recovery снаружи, логирование внутри
	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(deps.Logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(deps.Logger)(handler)

	return handler
}
