package api

import (
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Image is an uploaded asset reference served from the CDN.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
}

// Location is the profile's place of residence.
type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// SocialLinks holds the profile's external presence URLs.
// Absent entries are simply empty strings.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Behance   string `json:"behance,omitempty"`
	Dribbble  string `json:"dribbble,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Availability describes whether the owner is open for work.
type Availability struct {
	IsAvailable bool   `json:"isAvailable"`
	Status      string `json:"status,omitempty"`
}

// Profile is the singleton owner document behind the whole site.
type Profile struct {
	ID           string       `json:"_id"`
	Name         string       `json:"name"`
	Title        string       `json:"title"`
	Tagline      string       `json:"tagline,omitempty"`
	Bio          string       `json:"bio,omitempty"`
	ShortBio     string       `json:"shortBio,omitempty"`
	Avatar       *Image       `json:"avatar,omitempty"`
	ResumeURL    string       `json:"resumeUrl,omitempty"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Location     *Location    `json:"location,omitempty"`
	SocialLinks  *SocialLinks `json:"socialLinks,omitempty"`
	Availability Availability `json:"availability"`
}

// ProfileResponse wraps GET /profile.
type ProfileResponse struct {
	Profile Profile `json:"profile"`
}

// Validate is the boundary contract check: a profile without an
// identifier or a name is a malformed backend response, not data.
func (r ProfileResponse) Validate() error {
	p := r.Profile
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Required),
	)
}

// FileUpload is one file part of a multipart request. Name is the
// filename sent to the backend, Reader supplies the content.
type FileUpload struct {
	Name   string
	Reader io.Reader
}

// ProfileForm is the multipart payload for PUT /profile. Optional
// fields left nil are omitted entirely so the backend merge keeps
// the stored value.
type ProfileForm struct {
	Name        *string
	Title       *string
	Tagline     *string
	Bio         *string
	ShortBio    *string
	Email       *string
	Phone       *string
	ResumeURL   *string
	City        *string
	Country     *string
	LinkedIn    *string
	Twitter     *string
	Instagram   *string
	Behance     *string
	Dribbble    *string
	GitHub      *string
	Website     *string
	IsAvailable *bool
	Status      *string
	Avatar      *FileUpload
	Resume      *FileUpload
}
