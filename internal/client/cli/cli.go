package cli

import (
	"context"
	"fmt"

	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/api"
	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/auth"
	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/iocli"
	"github.com/Kramer-Mwangala/Felixportfolio/internal/config"
)

// Cli wires the API client, the session service, and the console
// together. Commands read the token fresh from the session store on
// every call; nothing is cached between invocations.
type Cli struct {
	client   *api.Client
	sessions auth.Sessions
	cfg      *config.Config
	io       iocli.IO
}

func New(client *api.Client, sessions auth.Sessions, cfg *config.Config, io iocli.IO) *Cli {
	return &Cli{
		client:   client,
		sessions: sessions,
		cfg:      cfg,
		io:       io,
	}
}

// Run dispatches a command. args is everything after the global
// flags.
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("missing command")
	}

	command := args[0]
	rest := args[1:]

	switch command {
	// Public site
	case "home":
		return c.runHome(ctx)
	case "profile":
		return c.runProfile(ctx)
	case "projects":
		return c.runProjects(ctx, rest)
	case "project":
		return c.runProject(ctx, rest)
	case "categories":
		return c.runCategories(ctx)
	case "skills":
		return c.runSkills(ctx)
	case "experience":
		return c.runExperience(ctx)
	case "testimonials":
		return c.runTestimonials(ctx, rest)
	case "services":
		return c.runServices(ctx)
	case "contact":
		return c.runContact(ctx)

	// Session
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)

	// Admin
	case "dashboard":
		return c.runDashboard(ctx)
	case "admin":
		return c.runAdmin(ctx, rest)

	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("Felixportfolio Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  portfolio [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version          Show version information")
	c.io.Println("  --server URL       API base URL (default from PORTFOLIO_API_URL)")
	c.io.Println("  --db PATH          Path to local session database")
	c.io.Println()
	c.io.Println("Public commands:")
	c.io.Println("  home                        Profile overview with featured work")
	c.io.Println("  profile                     Show the owner's profile")
	c.io.Println("  projects [flags]            List published projects")
	c.io.Println("  project <slug>              Show one project by slug")
	c.io.Println("  categories                  List project categories")
	c.io.Println("  skills                      List skills by category")
	c.io.Println("  experience                  Show work and education timeline")
	c.io.Println("  testimonials [--featured]   List testimonials")
	c.io.Println("  services                    List offered services")
	c.io.Println("  contact                     Send a message (interactive)")
	c.io.Println()
	c.io.Println("Session commands:")
	c.io.Println("  login                       Authenticate as admin")
	c.io.Println("  logout                      Delete the local session")
	c.io.Println("  status                      Show session status")
	c.io.Println()
	c.io.Println("Admin commands (require login):")
	c.io.Println("  dashboard                   Content counts across all resources")
	c.io.Println("  admin projects     list|get|create|update|delete")
	c.io.Println("  admin skills       list|add|update|delete")
	c.io.Println("  admin experience   list|add|update|delete")
	c.io.Println("  admin testimonials list|add|update|delete")
	c.io.Println("  admin services     list|add|update|delete")
	c.io.Println("  admin messages     list|read|delete")
	c.io.Println("  admin profile      show|update")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  portfolio projects --category branding --limit 5")
	c.io.Println("  portfolio project my-first-project")
	c.io.Println("  portfolio login")
	c.io.Println("  portfolio admin skills add")
	c.io.Println("  portfolio admin messages list --unread")
}

// runAdmin dispatches the authenticated resource commands.
func (c *Cli) runAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing resource. Usage: portfolio admin <projects|skills|experience|testimonials|services|messages|profile> <action>")
	}

	resource := args[0]
	rest := args[1:]

	switch resource {
	case "projects", "project":
		return c.runAdminProjects(ctx, rest)
	case "skills", "skill":
		return c.runAdminSkills(ctx, rest)
	case "experience":
		return c.runAdminExperience(ctx, rest)
	case "testimonials", "testimonial":
		return c.runAdminTestimonials(ctx, rest)
	case "services", "service":
		return c.runAdminServices(ctx, rest)
	case "messages", "message":
		return c.runAdminMessages(ctx, rest)
	case "profile":
		return c.runAdminProfile(ctx, rest)
	default:
		return fmt.Errorf("unknown admin resource: %s", resource)
	}
}
