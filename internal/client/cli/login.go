package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/bookshelf/internal/client/storage"
	"github.com/iudanet/bookshelf/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем username
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	// Запрашиваем пароль
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	authData := &storage.AuthData{
		Username:    resp.Username,
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Unix() + resp.ExpiresIn,
	}

	if err := c.authStorage.SaveAuth(ctx, authData); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", resp.Username)
	c.io.Printf("Access token expires in: %d seconds\n", resp.ExpiresIn)

	return nil
}
