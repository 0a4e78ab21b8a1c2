package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/bookshelf/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	auth, err := c.authStorage.GetAuth(ctx)
	if err != nil {
		if err == storage.ErrAuthNotFound {
			c.io.Println("Not authenticated, nothing to do.")
			return nil
		}
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	// Завершаем сессию на сервере; локальную сессию удаляем в любом случае
	if err := c.apiClient.Logout(ctx, auth.AccessToken); err != nil {
		c.io.Printf("Warning: server logout failed: %v\n", err)
	}

	if err := c.authStorage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
