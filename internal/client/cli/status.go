package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/auth"
	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	session, err := c.sessions.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'portfolio login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Admin: %s <%s>\n", session.Admin.Username, session.Admin.Email)
	c.io.Printf("Role: %s\n", session.Admin.Role)
	c.io.Printf("Logged in: %s\n", time.Unix(session.SavedAt, 0).Format(time.RFC3339))

	expiresAt, err := auth.TokenExpiry(session.Token)
	if err != nil {
		c.io.Println("Token expiry: unknown (no readable exp claim)")
		return nil
	}

	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	if remaining := time.Until(expiresAt); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	// Local state cannot tell a revoked token from a valid one;
	// only the server can.
	if _, err := c.client.GetMe(ctx, session.Token); err != nil {
		c.io.Printf("\nServer check failed: %v\n", err)
	} else {
		c.io.Println("✓ Session confirmed by server")
	}

	return nil
}
