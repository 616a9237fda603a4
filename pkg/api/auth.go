package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Admin represents the authenticated admin account returned on login.
type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (a Admin) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.Required),
	)
}

// LoginRequest is the credentials payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the admin identity.
// The token is the only thing the client persists.
type LoginResponse struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// Validate checks the login response against the contract before
// the token is handed to the caller.
func (r LoginResponse) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.Admin),
	)
}

// MeResponse is returned by GET /auth/me for session validation.
type MeResponse struct {
	Admin Admin `json:"admin"`
}

func (r MeResponse) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Admin),
	)
}
