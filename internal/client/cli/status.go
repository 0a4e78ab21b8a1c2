package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/bookshelf/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	authData, err := c.authStorage.GetAuth(ctx)
	if err != nil {
		if err == storage.ErrAuthNotFound {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'bookshelf login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	expiresAt := time.Unix(authData.ExpiresAt, 0)
	remaining := time.Until(expiresAt)

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", authData.Username)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	return nil
}
