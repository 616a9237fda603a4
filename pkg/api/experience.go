package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Experience timeline entry types.
const (
	ExperienceWork      = "work"
	ExperienceEducation = "education"
)

// Experience is one timeline entry, either work or education.
// EndDate is empty while IsCurrent is set; the backend owns that rule.
type Experience struct {
	ID           string   `json:"_id"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	IsCurrent    bool     `json:"isCurrent"`
	Duration     string   `json:"duration,omitempty"`
}

func (e Experience) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ID, validation.Required),
		validation.Field(&e.Type, validation.Required, validation.In(ExperienceWork, ExperienceEducation)),
		validation.Field(&e.Title, validation.Required),
	)
}

// ExperienceResponse wraps GET /experience. The backend returns the
// full list plus ready-made work/education partitions.
type ExperienceResponse struct {
	Experiences []Experience `json:"experiences,omitempty"`
	Work        []Experience `json:"work"`
	Education   []Experience `json:"education"`
}

func (r ExperienceResponse) Validate() error {
	for _, group := range [][]Experience{r.Experiences, r.Work, r.Education} {
		for _, e := range group {
			if err := e.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// SingleExperienceResponse wraps admin experience mutations.
type SingleExperienceResponse struct {
	Experience Experience `json:"experience"`
}

func (r SingleExperienceResponse) Validate() error {
	return r.Experience.Validate()
}

// ExperienceInput is the JSON body for experience create/update.
type ExperienceInput struct {
	Type         *string  `json:"type,omitempty"`
	Title        *string  `json:"title,omitempty"`
	Organization *string  `json:"organization,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	StartDate    *string  `json:"startDate,omitempty"`
	EndDate      *string  `json:"endDate,omitempty"`
	IsCurrent    *bool    `json:"isCurrent,omitempty"`
}
