package cli

import (
	"context"
	"fmt"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runAdminServices(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing action. Usage: portfolio admin services <list|add|update|delete>")
	}

	switch args[0] {
	case "list":
		return c.runAdminServicesList(ctx)
	case "add":
		return c.runAdminServicesAdd(ctx)
	case "update":
		return c.runAdminServicesUpdate(ctx, args[1:])
	case "delete":
		return c.runAdminServicesDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown action: %s", args[0])
	}
}

func (c *Cli) runAdminServicesList(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.client.AdminGetServices(ctx, token)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Println("=== Services (admin) ===")
	c.io.Println()
	for _, s := range resp.Services {
		state := "active"
		if !s.IsActive {
			state = "inactive"
		}
		c.io.Printf("%-24s  %-28s %-9s %s\n", s.ID, truncate(s.Title, 28), state, formatPrice(s))
	}
	if len(resp.Services) == 0 {
		c.io.Println("No services yet. Use 'portfolio admin services add'.")
	}

	return nil
}

func (c *Cli) serviceInputFromPrompts() (api.ServiceInput, error) {
	var input api.ServiceInput
	var err error

	if input.Title, err = c.promptOptional("Title: "); err != nil {
		return input, err
	}
	if input.Description, err = c.promptOptional("Description: "); err != nil {
		return input, err
	}
	if input.ShortDescription, err = c.promptOptional("Short description: "); err != nil {
		return input, err
	}
	if input.Icon, err = c.promptOptional("Icon: "); err != nil {
		return input, err
	}
	features, err := c.io.ReadInput("Features (comma-separated): ")
	if err != nil {
		return input, err
	}
	input.Features = splitList(features)
	// priceRange is the legacy free-text field; keep accepting it.
	if input.PriceRange, err = c.promptOptional("Price range (free text, optional): "); err != nil {
		return input, err
	}
	if input.Order, err = c.promptOptionalInt("Display order: "); err != nil {
		return input, err
	}
	if input.IsActive, err = c.promptOptionalBool("Active"); err != nil {
		return input, err
	}

	return input, nil
}

func (c *Cli) runAdminServicesAdd(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== New Service ===")
	c.io.Println()

	input, err := c.serviceInputFromPrompts()
	if err != nil {
		return err
	}

	resp, err := c.client.CreateService(ctx, token, input)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ Service created: %s\n", resp.Service.Title)

	return nil
}

func (c *Cli) runAdminServicesUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin services update <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Update Service ===")
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println()

	input, err := c.serviceInputFromPrompts()
	if err != nil {
		return err
	}

	resp, err := c.client.UpdateService(ctx, token, args[0], input)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ Service updated: %s\n", resp.Service.Title)

	return nil
}

func (c *Cli) runAdminServicesDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin services delete <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete service %s?", args[0]))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	ack, err := c.client.DeleteService(ctx, token, args[0])
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ %s\n", ack.Message)

	return nil
}
