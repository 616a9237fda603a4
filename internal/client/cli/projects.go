package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runProjects(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects", flag.ContinueOnError)
	category := fs.String("category", "", "Filter by category")
	featured := fs.Bool("featured", false, "Only featured projects")
	page := fs.Int("page", 0, "Page number")
	limit := fs.Int("limit", 0, "Page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := api.ProjectsQuery{
		Category: *category,
		Page:     *page,
		Limit:    *limit,
	}
	if *featured {
		query.Featured = "true"
	}

	resp, err := c.client.GetProjects(ctx, query)
	if err != nil {
		return err
	}

	c.io.Println("=== Projects ===")
	c.io.Println()
	if len(resp.Projects) == 0 {
		c.io.Println("No projects found.")
		return nil
	}

	for _, p := range resp.Projects {
		marker := " "
		if p.Featured {
			marker = "*"
		}
		c.io.Printf("%s %-30s %-12s %s\n", marker, truncate(p.Title, 30), p.Category, p.Slug)
	}

	if resp.Pagination.Pages > 1 {
		c.io.Println()
		c.io.Printf("Page %d of %d (%d total)\n", resp.Pagination.Page, resp.Pagination.Pages, resp.Pagination.Total)
	}

	return nil
}

func (c *Cli) runProject(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing slug. Usage: portfolio project <slug>")
	}

	resp, err := c.client.GetProject(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("project %q not found", args[0])
		}
		return err
	}

	p := resp.Project
	c.io.Printf("=== %s ===\n", p.Title)
	c.io.Printf("Category: %s\n", p.Category)
	if p.Client != nil && p.Client.Name != "" {
		c.io.Printf("Client: %s", p.Client.Name)
		if p.Client.Website != "" {
			c.io.Printf(" (%s)", p.Client.Website)
		}
		c.io.Println()
	}
	if p.CompletedAt != "" {
		c.io.Printf("Completed: %s\n", p.CompletedAt)
	}
	c.io.Println()
	c.io.Println(p.Description)

	if len(p.Tools) > 0 {
		c.io.Println()
		c.io.Printf("Tools: %v\n", p.Tools)
	}
	if len(p.Tags) > 0 {
		c.io.Printf("Tags: %v\n", p.Tags)
	}
	if p.ProjectURL != "" {
		c.io.Printf("URL: %s\n", p.ProjectURL)
	}

	if len(p.Images) > 0 {
		c.io.Println()
		c.io.Println("Images:")
		for _, img := range p.Images {
			primary := ""
			if img.IsPrimary {
				primary = " (primary)"
			}
			c.io.Printf("  %s%s\n", c.cfg.ResolveAssetURL(img.URL), primary)
		}
	}

	return nil
}

func (c *Cli) runCategories(ctx context.Context) error {
	resp, err := c.client.GetCategories(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Project Categories ===")
	c.io.Println()
	if len(resp.Categories) == 0 {
		c.io.Println("No categories yet.")
		return nil
	}
	for _, cat := range resp.Categories {
		c.io.Printf("%-20s %d project(s)\n", cat.ID, cat.Count)
	}

	return nil
}
