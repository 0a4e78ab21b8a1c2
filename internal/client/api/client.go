package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/bookshelf/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout завершает сессию на сервере
func (c *Client) Logout(ctx context.Context, token string) error {
	err := c.doRequest(ctx, "POST", "/api/v1/auth/logout", token, nil, nil)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// ListBooks возвращает весь каталог книг
func (c *Client) ListBooks(ctx context.Context) (*api.BookListResponse, error) {
	var resp api.BookListResponse
	err := c.doRequest(ctx, "GET", "/api/v1/books", "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list books request failed: %w", err)
	}
	return &resp, nil
}

// GetBook возвращает книгу по ISBN
func (c *Client) GetBook(ctx context.Context, isbn string) (*api.Book, error) {
	var resp api.Book
	path := "/api/v1/books/" + url.PathEscape(isbn)
	err := c.doRequest(ctx, "GET", path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get book request failed: %w", err)
	}
	return &resp, nil
}

// GetBooksByAuthor возвращает книги автора (точное совпадение без учета регистра)
func (c *Client) GetBooksByAuthor(ctx context.Context, author string) (*api.BookListResponse, error) {
	var resp api.BookListResponse
	path := "/api/v1/books/author/" + url.PathEscape(author)
	err := c.doRequest(ctx, "GET", path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get books by author request failed: %w", err)
	}
	return &resp, nil
}

// SearchBooksByTitle ищет книги по подстроке в названии
func (c *Client) SearchBooksByTitle(ctx context.Context, title string) (*api.BookListResponse, error) {
	var resp api.BookListResponse
	path := "/api/v1/books/title/" + url.PathEscape(title)
	err := c.doRequest(ctx, "GET", path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("search books by title request failed: %w", err)
	}
	return &resp, nil
}

// GetReviews возвращает все отзывы на книгу
func (c *Client) GetReviews(ctx context.Context, isbn string) (*api.ReviewsResponse, error) {
	var resp api.ReviewsResponse
	path := "/api/v1/books/" + url.PathEscape(isbn) + "/reviews"
	err := c.doRequest(ctx, "GET", path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get reviews request failed: %w", err)
	}
	return &resp, nil
}

// UpsertReview добавляет или заменяет отзыв текущего пользователя
func (c *Client) UpsertReview(ctx context.Context, token, isbn, review string) (*api.ReviewsResponse, error) {
	var resp api.ReviewsResponse
	path := "/api/v1/books/" + url.PathEscape(isbn) + "/reviews"
	err := c.doRequest(ctx, "PUT", path, token, api.ReviewRequest{Review: review}, &resp)
	if err != nil {
		return nil, fmt.Errorf("upsert review request failed: %w", err)
	}
	return &resp, nil
}

// DeleteReview удаляет отзыв текущего пользователя
func (c *Client) DeleteReview(ctx context.Context, token, isbn string) (*api.ReviewsResponse, error) {
	var resp api.ReviewsResponse
	path := "/api/v1/books/" + url.PathEscape(isbn) + "/reviews"
	err := c.doRequest(ctx, "DELETE", path, token, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("delete review request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
// Непустой token добавляется как Bearer заголовок
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
