package cli

import (
	"context"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runExperience(ctx context.Context) error {
	resp, err := c.client.GetExperience(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Experience ===")
	c.io.Println()

	c.printTimeline("Work", resp.Work)
	c.printTimeline("Education", resp.Education)

	if len(resp.Work) == 0 && len(resp.Education) == 0 {
		c.io.Println("No entries yet.")
	}

	return nil
}

func (c *Cli) printTimeline(heading string, entries []api.Experience) {
	if len(entries) == 0 {
		return
	}
	c.io.Printf("%s:\n", heading)
	for _, e := range entries {
		end := e.EndDate
		if e.IsCurrent {
			end = "present"
		}
		c.io.Printf("  %s - %s\n", e.StartDate, end)
		c.io.Printf("    %s, %s\n", e.Title, e.Organization)
		if e.Location != "" {
			c.io.Printf("    %s\n", e.Location)
		}
		for _, a := range e.Achievements {
			c.io.Printf("    - %s\n", a)
		}
	}
	c.io.Println()
}
