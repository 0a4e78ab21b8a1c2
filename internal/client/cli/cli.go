package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/bookshelf/internal/client/api"
	"github.com/iudanet/bookshelf/internal/client/iocli"
	"github.com/iudanet/bookshelf/internal/client/storage"
)

type Cli struct {
	apiClient   *api.Client
	authStorage storage.AuthStorage
	io          iocli.IO
}

func New(apiClient *api.Client, authStorage storage.AuthStorage, io iocli.IO) *Cli {
	return &Cli{
		apiClient:   apiClient,
		authStorage: authStorage,
		io:          io,
	}
}

// requireAuth возвращает сохраненную сессию или ошибку с подсказкой
func (c *Cli) requireAuth(ctx context.Context) (*storage.AuthData, error) {
	auth, err := c.authStorage.GetAuth(ctx)
	if err != nil {
		if err == storage.ErrAuthNotFound {
			return nil, fmt.Errorf("not authenticated. Please run 'bookshelf login' first")
		}
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}

	ok, err := c.authStorage.IsAuthenticated(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check authentication: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("session expired. Please run 'bookshelf login' again")
	}

	return auth, nil
}

func PrintUsage() {
	fmt.Println("Bookshelf Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bookshelf [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH          Path to local database (default: bookshelf-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register           Register new user")
	fmt.Println("  login              Login to server")
	fmt.Println("  logout             Logout from server")
	fmt.Println("  status             Show authentication status")
	fmt.Println("  books              List all books in the catalog")
	fmt.Println("  book <isbn>        Show a single book with its reviews")
	fmt.Println("  author <name>      List books by author (exact match)")
	fmt.Println("  title <text>       Search books by title substring")
	fmt.Println("  reviews <isbn>     Show all reviews for a book")
	fmt.Println("  review <isbn>      Add or replace your review for a book")
	fmt.Println("  unreview <isbn>    Delete your review for a book")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  bookshelf register")
	fmt.Println("  bookshelf login")
	fmt.Println("  bookshelf books")
	fmt.Println("  bookshelf book 1")
	fmt.Println("  bookshelf author 'Jane Austen'")
	fmt.Println("  bookshelf title things")
	fmt.Println("  bookshelf review 1")
	fmt.Println("  bookshelf --server https://example.com login")
}
