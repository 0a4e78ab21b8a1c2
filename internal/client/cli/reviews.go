package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runReviews(ctx context.Context, args []string) error {
	isbn, err := requireArg(args, "isbn")
	if err != nil {
		return err
	}

	resp, err := c.apiClient.GetReviews(ctx, isbn)
	if err != nil {
		return fmt.Errorf("failed to get reviews: %w", err)
	}

	c.io.Printf("=== Reviews for book %s ===\n", resp.ISBN)
	c.io.Println()
	c.printReviews(resp.Reviews)

	return nil
}

func (c *Cli) runReview(ctx context.Context, args []string) error {
	isbn, err := requireArg(args, "isbn")
	if err != nil {
		return err
	}

	auth, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	review, err := c.io.ReadInput("Review: ")
	if err != nil {
		return fmt.Errorf("failed to read review: %w", err)
	}

	resp, err := c.apiClient.UpsertReview(ctx, auth.AccessToken, isbn, review)
	if err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ %s\n", resp.Message)
	c.printReviews(resp.Reviews)

	return nil
}

func (c *Cli) runUnreview(ctx context.Context, args []string) error {
	isbn, err := requireArg(args, "isbn")
	if err != nil {
		return err
	}

	auth, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	resp, err := c.apiClient.DeleteReview(ctx, auth.AccessToken, isbn)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ %s\n", resp.Message)

	return nil
}
