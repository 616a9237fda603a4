package cli

import (
	"context"
	"fmt"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runAdminTestimonials(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing action. Usage: portfolio admin testimonials <list|add|update|delete>")
	}

	switch args[0] {
	case "list":
		return c.runAdminTestimonialsList(ctx)
	case "add":
		return c.runAdminTestimonialsAdd(ctx)
	case "update":
		return c.runAdminTestimonialsUpdate(ctx, args[1:])
	case "delete":
		return c.runAdminTestimonialsDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown action: %s", args[0])
	}
}

func (c *Cli) runAdminTestimonialsList(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.client.AdminGetTestimonials(ctx, token)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Println("=== Testimonials (admin) ===")
	c.io.Println()
	for _, t := range resp.Testimonials {
		marker := " "
		if t.Featured {
			marker = "*"
		}
		c.io.Printf("%s %-24s  %s  %-20s %s\n", marker, t.ID, stars(t.Rating), t.ClientName, truncate(t.Content, 40))
	}
	if len(resp.Testimonials) == 0 {
		c.io.Println("No testimonials yet. Use 'portfolio admin testimonials add'.")
	}

	return nil
}

func (c *Cli) testimonialInputFromPrompts() (api.TestimonialInput, error) {
	var input api.TestimonialInput
	var err error

	if input.ClientName, err = c.promptOptional("Client name: "); err != nil {
		return input, err
	}
	if input.ClientTitle, err = c.promptOptional("Client title: "); err != nil {
		return input, err
	}
	if input.Company, err = c.promptOptional("Company: "); err != nil {
		return input, err
	}
	if input.Content, err = c.promptOptional("Content: "); err != nil {
		return input, err
	}
	if input.Rating, err = c.promptOptionalInt("Rating (1-5): "); err != nil {
		return input, err
	}
	if input.Featured, err = c.promptOptionalBool("Featured"); err != nil {
		return input, err
	}

	return input, nil
}

func (c *Cli) runAdminTestimonialsAdd(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== New Testimonial ===")
	c.io.Println()

	input, err := c.testimonialInputFromPrompts()
	if err != nil {
		return err
	}

	resp, err := c.client.CreateTestimonial(ctx, token, input)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ Testimonial created for %s\n", resp.Testimonial.ClientName)

	return nil
}

func (c *Cli) runAdminTestimonialsUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin testimonials update <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Update Testimonial ===")
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println()

	input, err := c.testimonialInputFromPrompts()
	if err != nil {
		return err
	}

	resp, err := c.client.UpdateTestimonial(ctx, token, args[0], input)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ Testimonial updated for %s\n", resp.Testimonial.ClientName)

	return nil
}

func (c *Cli) runAdminTestimonialsDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin testimonials delete <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete testimonial %s?", args[0]))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	ack, err := c.client.DeleteTestimonial(ctx, token, args[0])
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ %s\n", ack.Message)

	return nil
}
