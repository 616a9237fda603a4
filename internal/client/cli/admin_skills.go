package cli

import (
	"context"
	"fmt"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runAdminSkills(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing action. Usage: portfolio admin skills <list|add|update|delete>")
	}

	switch args[0] {
	case "list":
		return c.runAdminSkillsList(ctx)
	case "add":
		return c.runAdminSkillsAdd(ctx)
	case "update":
		return c.runAdminSkillsUpdate(ctx, args[1:])
	case "delete":
		return c.runAdminSkillsDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown action: %s", args[0])
	}
}

func (c *Cli) runAdminSkillsList(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.client.AdminGetSkills(ctx, token)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Println("=== Skills (admin) ===")
	c.io.Println()
	for _, s := range resp.Skills {
		visible := " "
		if !s.IsVisible {
			visible = "hidden"
		}
		c.io.Printf("%-24s  %-20s %-12s %3d%%  %s\n", s.ID, s.Name, s.Category, s.Proficiency, visible)
	}
	if len(resp.Skills) == 0 {
		c.io.Println("No skills yet. Use 'portfolio admin skills add'.")
	}

	return nil
}

// skillInputFromPrompts reads a SkillInput. Empty answers are
// omitted from the request body so the backend merge keeps them.
func (c *Cli) skillInputFromPrompts() (api.SkillInput, error) {
	var input api.SkillInput
	var err error

	if input.Name, err = c.promptOptional("Name: "); err != nil {
		return input, err
	}
	if input.Category, err = c.promptOptional("Category: "); err != nil {
		return input, err
	}
	if input.Proficiency, err = c.promptOptionalInt("Proficiency (0-100): "); err != nil {
		return input, err
	}
	if input.Color, err = c.promptOptional("Color (hex, optional): "); err != nil {
		return input, err
	}
	if input.Order, err = c.promptOptionalInt("Display order: "); err != nil {
		return input, err
	}
	if input.IsVisible, err = c.promptOptionalBool("Visible"); err != nil {
		return input, err
	}

	return input, nil
}

func (c *Cli) runAdminSkillsAdd(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== New Skill ===")
	c.io.Println()

	input, err := c.skillInputFromPrompts()
	if err != nil {
		return err
	}

	resp, err := c.client.CreateSkill(ctx, token, input)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ Skill created: %s\n", resp.Skill.Name)

	return nil
}

func (c *Cli) runAdminSkillsUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin skills update <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Update Skill ===")
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println()

	input, err := c.skillInputFromPrompts()
	if err != nil {
		return err
	}

	resp, err := c.client.UpdateSkill(ctx, token, args[0], input)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ Skill updated: %s\n", resp.Skill.Name)

	return nil
}

func (c *Cli) runAdminSkillsDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: portfolio admin skills delete <id>")
	}
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete skill %s?", args[0]))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Aborted.")
		return nil
	}

	ack, err := c.client.DeleteSkill(ctx, token, args[0])
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Printf("✓ %s\n", ack.Message)

	return nil
}
