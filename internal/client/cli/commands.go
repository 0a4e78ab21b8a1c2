package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду и возвращает ошибку для обработки в main
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "books":
		return c.runBooks(ctx)
	case "book":
		return c.runBook(ctx, args)
	case "author":
		return c.runAuthor(ctx, args)
	case "title":
		return c.runTitle(ctx, args)
	case "reviews":
		return c.runReviews(ctx, args)
	case "review":
		return c.runReview(ctx, args)
	case "unreview":
		return c.runUnreview(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireArg возвращает первый позиционный аргумент команды
func requireArg(args []string, name string) (string, error) {
	if len(args) < 1 || args[0] == "" {
		return "", fmt.Errorf("missing required argument: %s", name)
	}
	return args[0], nil
}
