package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

// GetProfile fetches the site owner's profile.
func (c *Client) GetProfile(ctx context.Context) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	if err := c.doJSON(ctx, http.MethodGet, "/profile", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &resp, nil
}

// GetProjects fetches published projects. Unset filters do not appear
// in the query string at all: absence is not the same as empty.
func (c *Client) GetProjects(ctx context.Context, query api.ProjectsQuery) (*api.ProjectsResponse, error) {
	params := url.Values{}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Featured != "" {
		params.Set("featured", query.Featured)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	path := "/projects"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp api.ProjectsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get projects failed: %w", err)
	}
	return &resp, nil
}

// GetProject fetches a single project by its slug or identifier.
// A missing project surfaces as *api.Error with status 404.
func (c *Client) GetProject(ctx context.Context, slugOrID string) (*api.ProjectResponse, error) {
	var resp api.ProjectResponse
	path := "/projects/" + url.PathEscape(slugOrID)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get project failed: %w", err)
	}
	return &resp, nil
}

// GetCategories fetches project categories with their counts.
func (c *Client) GetCategories(ctx context.Context) (*api.CategoriesResponse, error) {
	var resp api.CategoriesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/projects/categories", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get categories failed: %w", err)
	}
	return &resp, nil
}

// GetSkills fetches all visible skills plus the category grouping.
func (c *Client) GetSkills(ctx context.Context) (*api.SkillsResponse, error) {
	var resp api.SkillsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/skills", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get skills failed: %w", err)
	}
	return &resp, nil
}

// GetExperience fetches the timeline, already partitioned into work
// and education by the backend.
func (c *Client) GetExperience(ctx context.Context) (*api.ExperienceResponse, error) {
	var resp api.ExperienceResponse
	if err := c.doJSON(ctx, http.MethodGet, "/experience", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get experience failed: %w", err)
	}
	return &resp, nil
}

// GetTestimonials fetches testimonials, optionally only featured ones.
func (c *Client) GetTestimonials(ctx context.Context, featuredOnly bool) (*api.TestimonialsResponse, error) {
	path := "/testimonials"
	if featuredOnly {
		path += "?featured=true"
	}
	var resp api.TestimonialsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get testimonials failed: %w", err)
	}
	return &resp, nil
}

// GetServices fetches the active services list.
func (c *Client) GetServices(ctx context.Context) (*api.ServicesResponse, error) {
	var resp api.ServicesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/services", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get services failed: %w", err)
	}
	return &resp, nil
}

// SendMessage submits the contact form. Fire-and-forget: no retry,
// no identifier comes back, and validation is entirely the
// backend's - its field complaints pass through in the error.
func (c *Client) SendMessage(ctx context.Context, req api.MessageRequest) (*api.AckResponse, error) {
	var resp api.AckResponse
	if err := c.doJSON(ctx, http.MethodPost, "/messages", "", req, &resp); err != nil {
		return nil, fmt.Errorf("send message failed: %w", err)
	}
	return &resp, nil
}
