package cli

import (
	"context"
	"fmt"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runServices(ctx context.Context) error {
	resp, err := c.client.GetServices(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Services ===")
	c.io.Println()
	if len(resp.Services) == 0 {
		c.io.Println("No services listed yet.")
		return nil
	}

	for _, s := range resp.Services {
		c.io.Printf("%s\n", s.Title)
		if s.ShortDescription != "" {
			c.io.Printf("  %s\n", s.ShortDescription)
		}
		for _, f := range s.Features {
			c.io.Printf("  - %s\n", f)
		}
		if price := formatPrice(s); price != "" {
			c.io.Printf("  Price: %s\n", price)
		}
		c.io.Println()
	}

	return nil
}

// formatPrice prefers the structured pricing object and falls back to
// the legacy free-text range. Both fields coexist in the backend.
func formatPrice(s api.Service) string {
	if s.Pricing != nil && s.Pricing.StartingPrice > 0 {
		currency := s.Pricing.Currency
		if currency == "" {
			currency = "USD"
		}
		format := "from %.0f %s"
		switch s.Pricing.PricingType {
		case "hourly":
			format = "from %.0f %s/hour"
		case "fixed":
			format = "from %.0f %s fixed"
		}
		return fmt.Sprintf(format, s.Pricing.StartingPrice, currency)
	}
	return s.PriceRange
}
