package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Skill is a single ability with a 0-100 proficiency, displayed in
// `order` within its category.
type Skill struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Order       int    `json:"order"`
	IsVisible   bool   `json:"isVisible"`
}

func (s Skill) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Proficiency, validation.Min(0), validation.Max(100)),
	)
}

// SkillsResponse wraps GET /skills. GroupedSkills is keyed by
// category and only present on the public endpoint.
type SkillsResponse struct {
	Skills        []Skill            `json:"skills"`
	GroupedSkills map[string][]Skill `json:"groupedSkills,omitempty"`
}

func (r SkillsResponse) Validate() error {
	for _, s := range r.Skills {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SkillResponse wraps single-skill admin mutations.
type SkillResponse struct {
	Skill Skill `json:"skill"`
}

func (r SkillResponse) Validate() error {
	return r.Skill.Validate()
}

// SkillInput is the JSON body for skill create/update. Nil fields
// are omitted so the backend merge leaves them untouched.
type SkillInput struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Proficiency *int    `json:"proficiency,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsVisible   *bool   `json:"isVisible,omitempty"`
}
