package webserver

import (
	"github.com/talkincode/backoffice/internal/domain"
)

// Validator plugs the domain validator into echo's c.Validate
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns domain.ValidationErrors for invalid payloads
func (v *Validator) Validate(i interface{}) error {
	return domain.Validate(i)
}
