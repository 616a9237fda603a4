package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

// Admin methods mirror the public ones but require a bearer token on
// every call. The token is a plain parameter: its lifecycle (acquire
// at login, clear at 401/logout) belongs to the caller, never here.

// Login authenticates with email and password. Wrong credentials come
// back as *api.Error with status 401, distinguishable from transport
// failures which stay plain errors.
func (c *Client) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	req := api.LoginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &resp, nil
}

// GetMe validates the session and returns the admin identity.
func (c *Client) GetMe(ctx context.Context, token string) (*api.MeResponse, error) {
	var resp api.MeResponse
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get me failed: %w", err)
	}
	return &resp, nil
}

// Projects

// AdminGetProjects lists all projects, published or not.
func (c *Client) AdminGetProjects(ctx context.Context, token string) (*api.ProjectsResponse, error) {
	var resp api.ProjectsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/projects", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin get projects failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) AdminGetProject(ctx context.Context, token, id string) (*api.ProjectResponse, error) {
	var resp api.ProjectResponse
	path := "/projects/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin get project failed: %w", err)
	}
	return &resp, nil
}

// CreateProject uploads a new project as a multipart form so image
// files travel with the fields.
func (c *Client) CreateProject(ctx context.Context, token string, form api.ProjectForm) (*api.ProjectResponse, error) {
	body, contentType, err := encodeProjectForm(form)
	if err != nil {
		return nil, fmt.Errorf("failed to encode project form: %w", err)
	}
	var resp api.ProjectResponse
	if err := c.doMultipart(ctx, http.MethodPost, "/projects", token, body, contentType, &resp); err != nil {
		return nil, fmt.Errorf("create project failed: %w", err)
	}
	return &resp, nil
}

// UpdateProject replaces the supplied fields of an existing project.
// Fields left nil are not sent; the backend merges.
func (c *Client) UpdateProject(ctx context.Context, token, id string, form api.ProjectForm) (*api.ProjectResponse, error) {
	body, contentType, err := encodeProjectForm(form)
	if err != nil {
		return nil, fmt.Errorf("failed to encode project form: %w", err)
	}
	var resp api.ProjectResponse
	path := "/projects/" + url.PathEscape(id)
	if err := c.doMultipart(ctx, http.MethodPut, path, token, body, contentType, &resp); err != nil {
		return nil, fmt.Errorf("update project failed: %w", err)
	}
	return &resp, nil
}

// DeleteProject removes a project unconditionally. Confirmation is a
// UI concern, not this layer's.
func (c *Client) DeleteProject(ctx context.Context, token, id string) (*api.AckResponse, error) {
	var resp api.AckResponse
	path := "/projects/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete project failed: %w", err)
	}
	return &resp, nil
}

// Skills

func (c *Client) AdminGetSkills(ctx context.Context, token string) (*api.SkillsResponse, error) {
	var resp api.SkillsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/skills", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin get skills failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) CreateSkill(ctx context.Context, token string, input api.SkillInput) (*api.SkillResponse, error) {
	var resp api.SkillResponse
	if err := c.doJSON(ctx, http.MethodPost, "/skills", token, input, &resp); err != nil {
		return nil, fmt.Errorf("create skill failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) UpdateSkill(ctx context.Context, token, id string, input api.SkillInput) (*api.SkillResponse, error) {
	var resp api.SkillResponse
	path := "/skills/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodPut, path, token, input, &resp); err != nil {
		return nil, fmt.Errorf("update skill failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) DeleteSkill(ctx context.Context, token, id string) (*api.AckResponse, error) {
	var resp api.AckResponse
	path := "/skills/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete skill failed: %w", err)
	}
	return &resp, nil
}

// Experience

func (c *Client) AdminGetExperience(ctx context.Context, token string) (*api.ExperienceResponse, error) {
	var resp api.ExperienceResponse
	if err := c.doJSON(ctx, http.MethodGet, "/experience", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin get experience failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) CreateExperience(ctx context.Context, token string, input api.ExperienceInput) (*api.SingleExperienceResponse, error) {
	var resp api.SingleExperienceResponse
	if err := c.doJSON(ctx, http.MethodPost, "/experience", token, input, &resp); err != nil {
		return nil, fmt.Errorf("create experience failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) UpdateExperience(ctx context.Context, token, id string, input api.ExperienceInput) (*api.SingleExperienceResponse, error) {
	var resp api.SingleExperienceResponse
	path := "/experience/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodPut, path, token, input, &resp); err != nil {
		return nil, fmt.Errorf("update experience failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) DeleteExperience(ctx context.Context, token, id string) (*api.AckResponse, error) {
	var resp api.AckResponse
	path := "/experience/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete experience failed: %w", err)
	}
	return &resp, nil
}

// Testimonials

func (c *Client) AdminGetTestimonials(ctx context.Context, token string) (*api.TestimonialsResponse, error) {
	var resp api.TestimonialsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/testimonials", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin get testimonials failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) CreateTestimonial(ctx context.Context, token string, input api.TestimonialInput) (*api.TestimonialResponse, error) {
	var resp api.TestimonialResponse
	if err := c.doJSON(ctx, http.MethodPost, "/testimonials", token, input, &resp); err != nil {
		return nil, fmt.Errorf("create testimonial failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) UpdateTestimonial(ctx context.Context, token, id string, input api.TestimonialInput) (*api.TestimonialResponse, error) {
	var resp api.TestimonialResponse
	path := "/testimonials/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodPut, path, token, input, &resp); err != nil {
		return nil, fmt.Errorf("update testimonial failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, token, id string) (*api.AckResponse, error) {
	var resp api.AckResponse
	path := "/testimonials/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete testimonial failed: %w", err)
	}
	return &resp, nil
}

// Services

func (c *Client) AdminGetServices(ctx context.Context, token string) (*api.ServicesResponse, error) {
	var resp api.ServicesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/services", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin get services failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) CreateService(ctx context.Context, token string, input api.ServiceInput) (*api.ServiceResponse, error) {
	var resp api.ServiceResponse
	if err := c.doJSON(ctx, http.MethodPost, "/services", token, input, &resp); err != nil {
		return nil, fmt.Errorf("create service failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) UpdateService(ctx context.Context, token, id string, input api.ServiceInput) (*api.ServiceResponse, error) {
	var resp api.ServiceResponse
	path := "/services/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodPut, path, token, input, &resp); err != nil {
		return nil, fmt.Errorf("update service failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) DeleteService(ctx context.Context, token, id string) (*api.AckResponse, error) {
	var resp api.AckResponse
	path := "/services/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete service failed: %w", err)
	}
	return &resp, nil
}

// Messages

// GetMessages lists contact submissions. IsRead is a tri-state
// filter: nil means no filter parameter is sent.
func (c *Client) GetMessages(ctx context.Context, token string, query api.MessagesQuery) (*api.MessagesResponse, error) {
	params := url.Values{}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.IsRead != nil {
		params.Set("isRead", strconv.FormatBool(*query.IsRead))
	}

	path := "/messages"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp api.MessagesResponse
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get messages failed: %w", err)
	}
	return &resp, nil
}

// MarkMessageRead flips a message to read. There is no inverse
// operation; the flag only ever moves forward.
func (c *Client) MarkMessageRead(ctx context.Context, token, id string) (*api.MessageResponse, error) {
	var resp api.MessageResponse
	path := "/messages/" + url.PathEscape(id) + "/read"
	if err := c.doJSON(ctx, http.MethodPut, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("mark message read failed: %w", err)
	}
	return &resp, nil
}

func (c *Client) DeleteMessage(ctx context.Context, token, id string) (*api.AckResponse, error) {
	var resp api.AckResponse
	path := "/messages/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("delete message failed: %w", err)
	}
	return &resp, nil
}

// Profile

func (c *Client) AdminGetProfile(ctx context.Context, token string) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	if err := c.doJSON(ctx, http.MethodGet, "/profile", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin get profile failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile updates the singleton profile as a multipart form so
// the avatar and resume files travel with the fields.
func (c *Client) UpdateProfile(ctx context.Context, token string, form api.ProfileForm) (*api.ProfileResponse, error) {
	body, contentType, err := encodeProfileForm(form)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile form: %w", err)
	}
	var resp api.ProfileResponse
	if err := c.doMultipart(ctx, http.MethodPut, "/profile", token, body, contentType, &resp); err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}
	return &resp, nil
}
