package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/bookshelf/internal/server/storage"
	"github.com/iudanet/bookshelf/internal/validation"
	"github.com/iudanet/bookshelf/pkg/api"
)

// ReviewsHandler обрабатывает авторизованные мутации рецензий
// Граница авторизации: username берется ТОЛЬКО из контекста,
// установленного auth middleware. Пользователь структурно не может
// записать или удалить чужую рецензию - ключом записи всегда служит
// его собственный username
type ReviewsHandler struct {
	logger      *slog.Logger
	bookStorage storage.BookStorage
}

// NewReviewsHandler создает новый handler рецензий
func NewReviewsHandler(logger *slog.Logger, bookStorage storage.BookStorage) *ReviewsHandler {
	return &ReviewsHandler{
		logger:      logger,
		bookStorage: bookStorage,
	}
}

// UpsertReview обрабатывает PUT /api/v1/books/{isbn}/reviews
// Добавление или перезапись рецензии вызывающего пользователя
func (h *ReviewsHandler) UpsertReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isbn := r.PathValue("isbn")

	username, ok := GetUsername(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "username not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode review request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateReview(req.Review); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	reviews, err := h.bookStorage.UpsertReview(ctx, isbn, username, req.Review)
	if err != nil {
		if errors.Is(err, storage.ErrBookNotFound) {
			h.sendError(w, "book not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to upsert review",
			slog.String("isbn", isbn),
			slog.String("username", username),
			slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "review upserted",
		slog.String("isbn", isbn),
		slog.String("username", username))

	resp := api.ReviewsResponse{
		ISBN:    isbn,
		Reviews: reviews,
		Message: "Review successfully added/updated",
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// DeleteReview обрабатывает DELETE /api/v1/books/{isbn}/reviews
// Удаление рецензии вызывающего пользователя
func (h *ReviewsHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isbn := r.PathValue("isbn")

	username, ok := GetUsername(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "username not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	reviews, err := h.bookStorage.DeleteReview(ctx, isbn, username)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBookNotFound):
			h.sendError(w, "book not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrReviewNotFound):
			h.sendError(w, "no review found from this user for this book", http.StatusNotFound)
		default:
			h.logger.ErrorContext(ctx, "failed to delete review",
				slog.String("isbn", isbn),
				slog.String("username", username),
				slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "review deleted",
		slog.String("isbn", isbn),
		slog.String("username", username))

	resp := api.ReviewsResponse{
		ISBN:    isbn,
		Reviews: reviews,
		Message: "Review successfully deleted",
	}

	h.sendJSON(w, resp, http.StatusOK)
}

func (h *ReviewsHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	sendJSON(h.logger, w, data, statusCode)
}

func (h *ReviewsHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	sendError(h.logger, w, message, statusCode)
}
