package cli

import (
	"context"
	"flag"
)

func (c *Cli) runTestimonials(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("testimonials", flag.ContinueOnError)
	featured := fs.Bool("featured", false, "Only featured testimonials")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := c.client.GetTestimonials(ctx, *featured)
	if err != nil {
		return err
	}

	c.io.Println("=== Testimonials ===")
	c.io.Println()
	if len(resp.Testimonials) == 0 {
		c.io.Println("No testimonials yet.")
		return nil
	}

	for _, t := range resp.Testimonials {
		c.io.Printf("%s  %s", stars(t.Rating), t.ClientName)
		if t.ClientTitle != "" || t.Company != "" {
			c.io.Printf(" (%s, %s)", t.ClientTitle, t.Company)
		}
		c.io.Println()
		c.io.Printf("  %s\n", t.Content)
		c.io.Println()
	}

	return nil
}
