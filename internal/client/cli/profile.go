package cli

import (
	"context"
)

func (c *Cli) runProfile(ctx context.Context) error {
	resp, err := c.client.GetProfile(ctx)
	if err != nil {
		return err
	}

	p := resp.Profile
	c.io.Printf("=== %s ===\n", p.Name)
	c.io.Printf("Title: %s\n", p.Title)
	if p.Bio != "" {
		c.io.Println()
		c.io.Println(p.Bio)
		c.io.Println()
	}
	if p.Email != "" {
		c.io.Printf("Email: %s\n", p.Email)
	}
	if p.Phone != "" {
		c.io.Printf("Phone: %s\n", p.Phone)
	}
	if p.Location != nil && (p.Location.City != "" || p.Location.Country != "") {
		c.io.Printf("Location: %s, %s\n", p.Location.City, p.Location.Country)
	}
	if p.Avatar != nil && p.Avatar.URL != "" {
		c.io.Printf("Avatar: %s\n", c.cfg.ResolveAssetURL(p.Avatar.URL))
	}
	if p.ResumeURL != "" {
		c.io.Printf("Resume: %s\n", c.cfg.ResolveAssetURL(p.ResumeURL))
	}

	if links := p.SocialLinks; links != nil {
		social := map[string]string{
			"LinkedIn":  links.LinkedIn,
			"Twitter":   links.Twitter,
			"Instagram": links.Instagram,
			"Behance":   links.Behance,
			"Dribbble":  links.Dribbble,
			"GitHub":    links.GitHub,
			"Website":   links.Website,
		}
		printed := false
		for _, name := range []string{"LinkedIn", "Twitter", "Instagram", "Behance", "Dribbble", "GitHub", "Website"} {
			if url := social[name]; url != "" {
				if !printed {
					c.io.Println()
					c.io.Println("Links:")
					printed = true
				}
				c.io.Printf("  %-10s %s\n", name, url)
			}
		}
	}

	c.io.Println()
	c.io.Printf("Available for work: %s\n", yesNo(p.Availability.IsAvailable))

	return nil
}
