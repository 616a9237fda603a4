package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

// runDashboard shows content counts across every admin resource. The
// five list calls run concurrently and fail as one batch.
func (c *Cli) runDashboard(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	var (
		projects     *api.ProjectsResponse
		skills       *api.SkillsResponse
		testimonials *api.TestimonialsResponse
		messages     *api.MessagesResponse
		services     *api.ServicesResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = c.client.AdminGetProjects(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = c.client.AdminGetSkills(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		testimonials, err = c.client.AdminGetTestimonials(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		messages, err = c.client.GetMessages(gctx, token, api.MessagesQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		services, err = c.client.AdminGetServices(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return c.adminErr(fmt.Errorf("failed to load dashboard: %w", err))
	}

	published := 0
	for _, p := range projects.Projects {
		if p.IsPublished {
			published++
		}
	}

	c.io.Println("=== Dashboard ===")
	c.io.Println()
	c.io.Printf("Projects:     %d (%d published)\n", len(projects.Projects), published)
	c.io.Printf("Skills:       %d\n", len(skills.Skills))
	c.io.Printf("Testimonials: %d\n", len(testimonials.Testimonials))
	c.io.Printf("Services:     %d\n", len(services.Services))
	c.io.Printf("Messages:     %d (%d unread)\n", len(messages.Messages), messages.UnreadCount)

	if messages.UnreadCount > 0 {
		c.io.Println()
		c.io.Println("Run 'portfolio admin messages list --unread' to read them.")
	}

	return nil
}
