package cli

import (
	"context"
	"sort"
)

func (c *Cli) runSkills(ctx context.Context) error {
	resp, err := c.client.GetSkills(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Skills ===")
	c.io.Println()

	// Prefer the backend's category grouping when present.
	if len(resp.GroupedSkills) > 0 {
		categories := make([]string, 0, len(resp.GroupedSkills))
		for cat := range resp.GroupedSkills {
			categories = append(categories, cat)
		}
		sort.Strings(categories)

		for _, cat := range categories {
			c.io.Printf("%s:\n", cat)
			for _, s := range resp.GroupedSkills[cat] {
				c.io.Printf("  %-20s %3d%%\n", s.Name, s.Proficiency)
			}
			c.io.Println()
		}
		return nil
	}

	if len(resp.Skills) == 0 {
		c.io.Println("No skills listed yet.")
		return nil
	}
	for _, s := range resp.Skills {
		c.io.Printf("%-20s %-12s %3d%%\n", s.Name, s.Category, s.Proficiency)
	}

	return nil
}
