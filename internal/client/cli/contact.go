package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

// runContact submits the contact form. Validation belongs entirely to
// the backend: whatever it complains about is printed verbatim, and
// nothing is retried.
func (c *Cli) runContact(ctx context.Context) error {
	c.io.Println("=== Contact ===")
	c.io.Println()

	name, err := c.io.ReadInput("Your name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	email, err := c.io.ReadInput("Your email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	subject, err := c.io.ReadInput("Subject (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read subject: %w", err)
	}
	message, err := c.io.ReadInput("Message: ")
	if err != nil {
		return fmt.Errorf("failed to read message: %w", err)
	}

	c.io.Println()
	c.io.Println("Sending...")

	ack, err := c.client.SendMessage(ctx, api.MessageRequest{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			c.io.Printf("Message rejected: %s\n", apiErr.Message)
			c.printFieldErrors(apiErr.Errors)
			return err
		}
		return fmt.Errorf("could not reach the server: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ %s\n", ack.Message)

	return nil
}
