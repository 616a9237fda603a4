package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Testimonial is a client quote with a 1-5 star rating.
type Testimonial struct {
	ID          string `json:"_id"`
	ClientName  string `json:"clientName"`
	ClientTitle string `json:"clientTitle,omitempty"`
	Company     string `json:"company,omitempty"`
	Content     string `json:"content"`
	Rating      int    `json:"rating"`
	Avatar      *Image `json:"avatar,omitempty"`
	Featured    bool   `json:"featured"`
}

func (t Testimonial) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required),
		validation.Field(&t.ClientName, validation.Required),
		validation.Field(&t.Rating, validation.Min(1), validation.Max(5)),
	)
}

// TestimonialsResponse wraps GET /testimonials.
type TestimonialsResponse struct {
	Testimonials []Testimonial `json:"testimonials"`
}

func (r TestimonialsResponse) Validate() error {
	for _, t := range r.Testimonials {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TestimonialResponse wraps admin testimonial mutations.
type TestimonialResponse struct {
	Testimonial Testimonial `json:"testimonial"`
}

func (r TestimonialResponse) Validate() error {
	return r.Testimonial.Validate()
}

// TestimonialInput is the JSON body for testimonial create/update.
type TestimonialInput struct {
	ClientName  *string `json:"clientName,omitempty"`
	ClientTitle *string `json:"clientTitle,omitempty"`
	Company     *string `json:"company,omitempty"`
	Content     *string `json:"content,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
	Featured    *bool   `json:"featured,omitempty"`
}
