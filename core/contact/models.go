package contact

import (
	"github.com/go-playground/validator/v10"

	"github.com/uyznfoundation/portal/core"
)

// Message is the contact form payload.
type Message struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (m *Message) Validate(validate *validator.Validate) error {
	m.Name = core.CleanString(m.Name)
	m.Email = core.CleanString(m.Email, true /* lower */)
	m.Message = core.CleanString(m.Message)
	return validate.Struct(m)
}

// Subscription is the newsletter signup payload.
type Subscription struct {
	Email string `json:"email" validate:"required,email"`
}

func (s *Subscription) Validate(validate *validator.Validate) error {
	s.Email = core.CleanString(s.Email, true /* lower */)
	return validate.Struct(s)
}

// Receipt acknowledges a processed submission.
type Receipt struct {
	Ref string `json:"ref"`
}
