package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

func (c *Cli) runAdminProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing action. Usage: portfolio admin profile <show|update>")
	}

	switch args[0] {
	case "show":
		return c.runAdminProfileShow(ctx)
	case "update":
		return c.runAdminProfileUpdate(ctx, args[1:])
	default:
		return fmt.Errorf("unknown action: %s", args[0])
	}
}

func (c *Cli) runAdminProfileShow(ctx context.Context) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.client.AdminGetProfile(ctx, token)
	if err != nil {
		return c.adminErr(err)
	}

	p := resp.Profile
	c.io.Printf("Name: %s\n", p.Name)
	c.io.Printf("Title: %s\n", p.Title)
	c.io.Printf("Email: %s\n", p.Email)
	c.io.Printf("Phone: %s\n", p.Phone)
	if p.Location != nil {
		c.io.Printf("Location: %s, %s\n", p.Location.City, p.Location.Country)
	}
	c.io.Printf("Available: %s\n", yesNo(p.Availability.IsAvailable))
	if p.Avatar != nil {
		c.io.Printf("Avatar: %s\n", p.Avatar.URL)
	}
	if p.ResumeURL != "" {
		c.io.Printf("Resume: %s\n", p.ResumeURL)
	}

	return nil
}

func (c *Cli) runAdminProfileUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	avatarPath := fs.String("avatar", "", "Avatar image file to upload")
	resumePath := fs.String("resume", "", "Resume file to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Update Profile ===")
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println()

	var form api.ProfileForm
	if form.Name, err = c.promptOptional("Name: "); err != nil {
		return err
	}
	if form.Title, err = c.promptOptional("Title: "); err != nil {
		return err
	}
	if form.Tagline, err = c.promptOptional("Tagline: "); err != nil {
		return err
	}
	if form.Bio, err = c.promptOptional("Bio: "); err != nil {
		return err
	}
	if form.Email, err = c.promptOptional("Email: "); err != nil {
		return err
	}
	if form.Phone, err = c.promptOptional("Phone: "); err != nil {
		return err
	}
	if form.City, err = c.promptOptional("City: "); err != nil {
		return err
	}
	if form.Country, err = c.promptOptional("Country: "); err != nil {
		return err
	}
	if form.LinkedIn, err = c.promptOptional("LinkedIn URL: "); err != nil {
		return err
	}
	if form.Twitter, err = c.promptOptional("Twitter URL: "); err != nil {
		return err
	}
	if form.Instagram, err = c.promptOptional("Instagram URL: "); err != nil {
		return err
	}
	if form.Behance, err = c.promptOptional("Behance URL: "); err != nil {
		return err
	}
	if form.Dribbble, err = c.promptOptional("Dribbble URL: "); err != nil {
		return err
	}
	if form.GitHub, err = c.promptOptional("GitHub URL: "); err != nil {
		return err
	}
	if form.ResumeURL, err = c.promptOptional("Resume URL: "); err != nil {
		return err
	}
	if form.IsAvailable, err = c.promptOptionalBool("Available for work"); err != nil {
		return err
	}

	var files []*os.File
	defer func() { closeFiles(files) }()

	if *avatarPath != "" {
		f, err := os.Open(*avatarPath)
		if err != nil {
			return fmt.Errorf("failed to open avatar %s: %w", *avatarPath, err)
		}
		files = append(files, f)
		form.Avatar = &api.FileUpload{Name: filepath.Base(*avatarPath), Reader: f}
	}
	if *resumePath != "" {
		f, err := os.Open(*resumePath)
		if err != nil {
			return fmt.Errorf("failed to open resume %s: %w", *resumePath, err)
		}
		files = append(files, f)
		form.Resume = &api.FileUpload{Name: filepath.Base(*resumePath), Reader: f}
	}

	resp, err := c.client.UpdateProfile(ctx, token, form)
	if err != nil {
		return c.adminErr(err)
	}

	c.io.Println()
	c.io.Printf("✓ Profile updated: %s\n", resp.Profile.Name)

	return nil
}
