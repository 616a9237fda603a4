package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/auth"
	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/storage"
	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

// requireToken loads the stored bearer token for an admin command.
// It warns when the token looks expired but still hands it over: the
// backend answering 401 is the real authority.
func (c *Cli) requireToken(ctx context.Context) (string, error) {
	session, err := c.sessions.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", fmt.Errorf("not authenticated. Please run 'portfolio login' first")
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	if expiresAt, err := auth.TokenExpiry(session.Token); err == nil && time.Now().After(expiresAt) {
		c.io.Println("⚠️  Stored token looks expired; the server may reject this call.")
	}

	return session.Token, nil
}

// adminErr decorates admin call failures. A 401 means the session is
// invalid: the caller-side policy is to point at the login flow, and
// backend field complaints are printed verbatim, never synthesized.
func (c *Cli) adminErr(err error) error {
	if err == nil {
		return nil
	}
	if api.IsUnauthorized(err) {
		c.io.Println("Session invalid or expired. Run 'portfolio login' to re-authenticate.")
	}
	return err
}

// printFieldErrors shows the backend's field-level complaints, one
// per line.
func (c *Cli) printFieldErrors(fieldErrors []string) {
	for _, fe := range fieldErrors {
		c.io.Printf("  - %s\n", fe)
	}
}

// promptOptional reads a value that may be left empty; empty means
// "do not send the field".
func (c *Cli) promptOptional(label string) (*string, error) {
	value, err := c.io.ReadInput(label)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if value == "" {
		return nil, nil
	}
	return &value, nil
}

// promptRequired reads a value that must be non-empty.
func (c *Cli) promptRequired(label string) (string, error) {
	value, err := c.io.ReadInput(label)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if value == "" {
		return "", fmt.Errorf("%s cannot be empty", strings.TrimSuffix(strings.TrimSpace(label), ":"))
	}
	return value, nil
}

// promptOptionalInt reads an optional integer field.
func (c *Cli) promptOptionalInt(label string) (*int, error) {
	value, err := c.io.ReadInput(label)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", value, err)
	}
	return &n, nil
}

// promptOptionalBool reads an optional yes/no field.
func (c *Cli) promptOptionalBool(label string) (*bool, error) {
	value, err := c.io.ReadInput(label + " [y/n, empty to skip]: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if value == "" {
		return nil, nil
	}
	b := strings.EqualFold(value, "y") || strings.EqualFold(value, "yes") || strings.EqualFold(value, "true")
	return &b, nil
}

// splitList turns "a, b, c" into a slice, dropping empties. Returns
// nil for an empty input so the field is omitted entirely.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// truncate shortens long text for list output.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// stars renders a 1-5 rating.
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
