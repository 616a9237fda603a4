package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runAdminMessages(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing action. Usage: portfolio admin messages <list|read|delete>")
	}

	switch args[0] {
	case "list":
		return c.runAdminMessagesList(ctx, args[1:])
	case "read":
		return c.runAdminMessagesRead(ctx, args[1:])
	case "delete":
		return c.runAdminMessagesDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown action: %s", args[0])
	}
}

func (c *Cli) runAdminMessagesList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	unread := fs.Bool("unread", false, "Only unread messages")
	page := fs.Int("page", 0, "Page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	query := api.MessagesQuery{Page: *page}
	if *unread {
		isRead := false
		query.IsRead = &isRead
	}

	resp, err := c.client.GetMessages(ctx, token, query)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Println("=== Inbox ===")
	c.io.Println()
	if len(resp.Messages) == 0 {
		c.io.Println("No messages.")
		return nil
	}

	for _, m := range resp.Messages {
		marker := " "
		if !m.IsRead {
			marker = "●"
		}
		subject := m.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		c.io.Printf("%s %-24s  %-22s %-30s %s\n", marker, m.ID, m.Name, truncate(subject, 30), m.CreatedAt)
	}

	c.io.Println()
	c.io.Printf("%d unread of %d total\n", resp.UnreadCount, resp.Pagination.Total)
	if resp.Pagination.Pages > 1 {
		c.io.Printf("Page %d of %d\n", resp.Pagination.Page, resp.Pagination.Pages)
	}

	return nil
}

// runAdminMessagesRead shows a message and marks it read. The read
// flag only ever moves forward; there is no mark-unread.
func (c *Cli) runAdminMessagesRead(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin messages read <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.client.MarkMessageRead(ctx, token, args[0])
	if err != nil {
		return c.adminErr(err)
	}

	m := resp.Message
	c.io.Printf("From: %s <%s>\n", m.Name, m.Email)
	if m.Subject != "" {
		c.io.Printf("Subject: %s\n", m.Subject)
	}
	c.io.Printf("Received: %s\n", m.CreatedAt)
	c.io.Println()
	c.io.Println(m.Message)

	return nil
}

func (c *Cli) runAdminMessagesDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin messages delete <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete message %s?", args[0]))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	ack, err := c.client.DeleteMessage(ctx, token, args[0])
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ %s\n", ack.Message)

	return nil
}
