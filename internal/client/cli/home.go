package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

// runHome renders the landing view: profile plus featured projects.
// Both reads go out concurrently and the whole batch fails together;
// partial data is never shown.
func (c *Cli) runHome(ctx context.Context) error {
	var (
		profileResp  *api.ProfileResponse
		projectsResp *api.ProjectsResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profileResp, err = c.client.GetProfile(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		projectsResp, err = c.client.GetProjects(gctx, api.ProjectsQuery{Featured: "true", Limit: 4})
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load home data: %w", err)
	}

	p := profileResp.Profile
	c.io.Printf("=== %s, %s ===\n", p.Name, p.Title)
	if p.Tagline != "" {
		c.io.Println(p.Tagline)
	}
	if p.ShortBio != "" {
		c.io.Println()
		c.io.Println(p.ShortBio)
	}
	if p.Availability.IsAvailable {
		c.io.Println()
		status := p.Availability.Status
		if status == "" {
			status = "Available for work"
		}
		c.io.Printf("✓ %s\n", status)
	}

	c.io.Println()
	c.io.Println("Featured work:")
	if len(projectsResp.Projects) == 0 {
		c.io.Println("  (nothing featured yet)")
		return nil
	}
	for _, project := range projectsResp.Projects {
		c.io.Printf("  %-30s %s\n", project.Title, project.Category)
	}

	return nil
}
