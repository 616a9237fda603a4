package cli

import (
	"context"
	"fmt"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runAdminExperience(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing action. Usage: portfolio admin experience <list|add|update|delete>")
	}

	switch args[0] {
	case "list":
		return c.runAdminExperienceList(ctx)
	case "add":
		return c.runAdminExperienceAdd(ctx)
	case "update":
		return c.runAdminExperienceUpdate(ctx, args[1:])
	case "delete":
		return c.runAdminExperienceDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown action: %s", args[0])
	}
}

func (c *Cli) runAdminExperienceList(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.client.AdminGetExperience(ctx, token)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Println("=== Experience (admin) ===")
	c.io.Println()
	for _, group := range [][]api.Experience{resp.Work, resp.Education} {
		for _, e := range group {
			end := e.EndDate
			if e.IsCurrent {
				end = "present"
			}
			c.io.Printf("%-24s  %-9s  %s at %s (%s - %s)\n", e.ID, e.Type, e.Title, e.Organization, e.StartDate, end)
		}
	}
	if len(resp.Work) == 0 && len(resp.Education) == 0 {
		c.io.Println("No entries yet. Use 'portfolio admin experience add'.")
	}

	return nil
}

// experienceInputFromPrompts reads an ExperienceInput. The end date
// prompt is skipped when the entry is marked current, mirroring the
// disabled field in the admin form.
func (c *Cli) experienceInputFromPrompts() (api.ExperienceInput, error) {
	var input api.ExperienceInput
	var err error

	if input.Type, err = c.promptOptional("Type (work/education): "); err != nil {
		return input, err
	}
	if input.Title, err = c.promptOptional("Title: "); err != nil {
		return input, err
	}
	if input.Organization, err = c.promptOptional("Organization: "); err != nil {
		return input, err
	}
	if input.Location, err = c.promptOptional("Location: "); err != nil {
		return input, err
	}
	if input.Description, err = c.promptOptional("Description: "); err != nil {
		return input, err
	}
	achievements, err := c.io.ReadInput("Achievements (comma-separated): ")
	if err != nil {
		return input, err
	}
	input.Achievements = splitList(achievements)
	if input.StartDate, err = c.promptOptional("Start date (YYYY-MM-DD): "); err != nil {
		return input, err
	}
	if input.IsCurrent, err = c.promptOptionalBool("Current position"); err != nil {
		return input, err
	}
	if input.IsCurrent == nil || !*input.IsCurrent {
		if input.EndDate, err = c.promptOptional("End date (YYYY-MM-DD): "); err != nil {
			return input, err
		}
	}

	return input, nil
}

func (c *Cli) runAdminExperienceAdd(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== New Experience Entry ===")
	c.io.Println()

	input, err := c.experienceInputFromPrompts()
	if err != nil {
		return err
	}

	resp, err := c.client.CreateExperience(ctx, token, input)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ Entry created: %s at %s\n", resp.Experience.Title, resp.Experience.Organization)

	return nil
}

func (c *Cli) runAdminExperienceUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin experience update <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Update Experience Entry ===")
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println()

	input, err := c.experienceInputFromPrompts()
	if err != nil {
		return err
	}

	resp, err := c.client.UpdateExperience(ctx, token, args[0], input)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ Entry updated: %s\n", resp.Experience.Title)

	return nil
}

func (c *Cli) runAdminExperienceDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin experience delete <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete entry %s?", args[0]))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	ack, err := c.client.DeleteExperience(ctx, token, args[0])
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ %s\n", ack.Message)

	return nil
}
