package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Pricing is the structured price representation. PriceRange on
// Service is the free-text predecessor; both coexist in the backend
// and both are carried here untouched.
type Pricing struct {
	StartingPrice float64 `json:"startingPrice,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	PricingType   string  `json:"pricingType"`
}

// Service is one offered service with its feature list and price.
type Service struct {
	ID               string   `json:"_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Icon             string   `json:"icon,omitempty"`
	Features         []string `json:"features"`
	PriceRange       string   `json:"priceRange,omitempty"`
	Pricing          *Pricing `json:"pricing,omitempty"`
	Order            int      `json:"order"`
	IsActive         bool     `json:"isActive"`
}

func (s Service) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.Title, validation.Required),
	)
}

// ServicesResponse wraps GET /services.
type ServicesResponse struct {
	Services []Service `json:"services"`
}

func (r ServicesResponse) Validate() error {
	for _, s := range r.Services {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ServiceResponse wraps admin service mutations.
type ServiceResponse struct {
	Service Service `json:"service"`
}

func (r ServiceResponse) Validate() error {
	return r.Service.Validate()
}

// ServiceInput is the JSON body for service create/update.
type ServiceInput struct {
	Title            *string  `json:"title,omitempty"`
	Description      *string  `json:"description,omitempty"`
	ShortDescription *string  `json:"shortDescription,omitempty"`
	Icon             *string  `json:"icon,omitempty"`
	Features         []string `json:"features,omitempty"`
	PriceRange       *string  `json:"priceRange,omitempty"`
	Pricing          *Pricing `json:"pricing,omitempty"`
	Order            *int     `json:"order,omitempty"`
	IsActive         *bool    `json:"isActive,omitempty"`
}
