package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runAdminProjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing action. Usage: portfolio admin projects <list|get|create|update|delete>")
	}

	action := args[0]
	rest := args[1:]

	switch action {
	case "list":
		return c.runAdminProjectsList(ctx)
	case "get":
		return c.runAdminProjectsGet(ctx, rest)
	case "create":
		return c.runAdminProjectsCreate(ctx, rest)
	case "update":
		return c.runAdminProjectsUpdate(ctx, rest)
	case "delete":
		return c.runAdminProjectsDelete(ctx, rest)
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}

func (c *Cli) runAdminProjectsList(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.client.AdminGetProjects(ctx, token)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Println("=== Projects (admin) ===")
	c.io.Println()
	if len(resp.Projects) == 0 {
		c.io.Println("No projects yet. Use 'portfolio admin projects create'.")
		return nil
	}
	for _, p := range resp.Projects {
		state := "draft"
		if p.IsPublished {
			state = "published"
		}
		c.io.Printf("%-24s  %-30s %-12s %s\n", p.ID, truncate(p.Title, 30), p.Category, state)
	}

	return nil
}

func (c *Cli) runAdminProjectsGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin projects get <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.client.AdminGetProject(ctx, token, args[0])
	if err != nil {
		return c.adminErr(err)
	}

	p := resp.Project
	c.io.Printf("ID: %s\n", p.ID)
	c.io.Printf("Title: %s\n", p.Title)
	c.io.Printf("Slug: %s\n", p.Slug)
	c.io.Printf("Category: %s\n", p.Category)
	c.io.Printf("Featured: %s  Published: %s\n", yesNo(p.Featured), yesNo(p.IsPublished))
	c.io.Printf("Images: %d\n", len(p.Images))
	c.io.Println()
	c.io.Println(p.Description)

	return nil
}

// projectFormFromPrompts builds a ProjectForm interactively. Fields
// left empty are omitted; on update the backend keeps stored values.
func (c *Cli) projectFormFromPrompts(imagePaths []string) (api.ProjectForm, []*os.File, error) {
	var form api.ProjectForm
	var err error

	if form.Title, err = c.promptOptional("Title: "); err != nil {
		return form, nil, err
	}
	if form.Description, err = c.promptOptional("Description: "); err != nil {
		return form, nil, err
	}
	if form.Category, err = c.promptOptional("Category: "); err != nil {
		return form, nil, err
	}
	tools, err := c.io.ReadInput("Tools (comma-separated): ")
	if err != nil {
		return form, nil, err
	}
	form.Tools = splitList(tools)
	tags, err := c.io.ReadInput("Tags (comma-separated): ")
	if err != nil {
		return form, nil, err
	}
	form.Tags = splitList(tags)
	if form.ClientName, err = c.promptOptional("Client name: "); err != nil {
		return form, nil, err
	}
	if form.ClientWebsite, err = c.promptOptional("Client website: "); err != nil {
		return form, nil, err
	}
	if form.CompletedAt, err = c.promptOptional("Completed at (YYYY-MM-DD): "); err != nil {
		return form, nil, err
	}
	if form.Featured, err = c.promptOptionalBool("Featured"); err != nil {
		return form, nil, err
	}
	if form.IsPublished, err = c.promptOptionalBool("Published"); err != nil {
		return form, nil, err
	}

	files := make([]*os.File, 0, len(imagePaths))
	for _, path := range imagePaths {
		f, err := os.Open(path)
		if err != nil {
			closeFiles(files)
			return form, nil, fmt.Errorf("failed to open image %s: %w", path, err)
		}
		files = append(files, f)
		form.Images = append(form.Images, api.FileUpload{
			Name:   filepath.Base(path),
			Reader: f,
		})
	}

	return form, files, nil
}

func closeFiles(files []*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

type imageFlags []string

func (i *imageFlags) String() string { return fmt.Sprint(*i) }
func (i *imageFlags) Set(v string) error {
	*i = append(*i, v)
	return nil
}

func (c *Cli) runAdminProjectsCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	var images imageFlags
	fs.Var(&images, "image", "Image file to upload (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== New Project ===")
	c.io.Println()

	form, files, err := c.projectFormFromPrompts(images)
	if err != nil {
		return err
	}
	defer closeFiles(files)

	resp, err := c.client.CreateProject(ctx, token, form)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Println()
	c.io.Printf("✓ Project created: %s (slug: %s)\n", resp.Project.Title, resp.Project.Slug)

	return nil
}

func (c *Cli) runAdminProjectsUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	var images imageFlags
	fs.Var(&images, "image", "Image file to upload (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin projects update [--image FILE] <id>")
	}
	id := fs.Arg(0)

	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Update Project ===")
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println()

	form, files, err := c.projectFormFromPrompts(images)
	if err != nil {
		return err
	}
	defer closeFiles(files)

	resp, err := c.client.UpdateProject(ctx, token, id, form)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Println()
	c.io.Printf("✓ Project updated: %s\n", resp.Project.Title)

	return nil
}

func (c *Cli) runAdminProjectsDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin projects delete <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete project %s?", args[0]))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	ack, err := c.client.DeleteProject(ctx, token, args[0])
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ %s\n", ack.Message)

	return nil
}
