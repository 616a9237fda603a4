package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/auth"
	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Admin Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	result, err := c.client.Login(ctx, email, password)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			c.io.Printf("Login rejected: %s\n", apiErr.Message)
			c.printFieldErrors(apiErr.Errors)
			return err
		}
		return fmt.Errorf("could not reach the server: %w", err)
	}

	if err := c.sessions.SaveSession(ctx, result.Token, result.Admin); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as: %s (%s)\n", result.Admin.Username, result.Admin.Role)
	if expiresAt, err := auth.TokenExpiry(result.Token); err == nil {
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	}

	return nil
}
