package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Message is a contact-form submission. The client only ever marks
// it read or deletes it; there is no mark-unread operation.
type Message struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject,omitempty"`
	Message    string `json:"message"`
	IsRead     bool   `json:"isRead"`
	IsArchived bool   `json:"isArchived"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

func (m Message) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.Required),
		validation.Field(&m.Email, validation.Required),
	)
}

// MessageRequest is the public contact-form payload. No client-side
// validation happens here: the backend's field complaints are passed
// through verbatim.
type MessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// MessagesQuery are the optional filters for the admin inbox.
type MessagesQuery struct {
	Page   int
	IsRead *bool
}

// MessagesResponse wraps GET /messages (admin).
type MessagesResponse struct {
	Messages    []Message  `json:"messages"`
	UnreadCount int        `json:"unreadCount"`
	Pagination  Pagination `json:"pagination"`
}

func (r MessagesResponse) Validate() error {
	for _, m := range r.Messages {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MessageResponse wraps PUT /messages/:id/read.
type MessageResponse struct {
	Message Message `json:"message"`
}

func (r MessageResponse) Validate() error {
	return r.Message.Validate()
}
