package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProjectImage is one image attached to a project. Exactly one image
// is expected to carry IsPrimary, but the backend owns that rule.
type ProjectImage struct {
	URL       string `json:"url"`
	PublicID  string `json:"publicId,omitempty"`
	Alt       string `json:"alt,omitempty"`
	IsPrimary bool   `json:"isPrimary,omitempty"`
}

// ProjectClient identifies who the work was done for.
type ProjectClient struct {
	Name    string `json:"name,omitempty"`
	Website string `json:"website,omitempty"`
}

// Project is a portfolio entry. Slug is the public lookup key and is
// assigned by the backend, never by this client.
type Project struct {
	ID               string         `json:"_id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"shortDescription,omitempty"`
	Category         string         `json:"category"`
	Images           []ProjectImage `json:"images"`
	Tools            []string       `json:"tools"`
	Client           *ProjectClient `json:"client,omitempty"`
	ProjectURL       string         `json:"projectUrl,omitempty"`
	Featured         bool           `json:"featured"`
	IsPublished      bool           `json:"isPublished"`
	CompletedAt      string         `json:"completedAt,omitempty"`
	Tags             []string       `json:"tags"`
	CreatedAt        string         `json:"createdAt,omitempty"`
}

func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Slug, validation.Required),
	)
}

// Pagination describes a paginated list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ProjectsQuery are the optional filters for GET /projects. Zero
// values mean "not set" and produce no query parameter at all.
type ProjectsQuery struct {
	Category string
	Featured string // "true"/"false" passed through verbatim
	Page     int
	Limit    int
}

// ProjectsResponse wraps GET /projects.
type ProjectsResponse struct {
	Projects   []Project  `json:"projects"`
	Pagination Pagination `json:"pagination"`
}

func (r ProjectsResponse) Validate() error {
	for _, p := range r.Projects {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ProjectResponse wraps GET /projects/:slugOrID.
type ProjectResponse struct {
	Project Project `json:"project"`
}

func (r ProjectResponse) Validate() error {
	return r.Project.Validate()
}

// Category is one entry of GET /projects/categories: a category name
// with its published-project count.
type Category struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}

// CategoriesResponse wraps GET /projects/categories.
type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// ProjectForm is the multipart payload for project create/update.
// Scalar fields follow the merge convention of ProfileForm; Images
// are appended as file parts under the repeated "images" key.
type ProjectForm struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Category         *string
	Tools            []string
	Tags             []string
	ClientName       *string
	ClientWebsite    *string
	ProjectURL       *string
	Featured         *bool
	IsPublished      *bool
	CompletedAt      *string
	Images           []FileUpload
}
