package validator

import (
	validators "github.com/go-playground/validator/v10"
)

// Validator interface - struct-tag validation as seen by the HTTP handlers
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New func - Creates a validator backed by go-playground struct tags
func New() Validator {
	v := validators.New()
	return &validator{
		validator: v,
	}
}

// ValidateStruct func - Returns the first tag violation found, nil when clean
func (v *validator) ValidateStruct(inf interface{}) error {
	return v.validator.Struct(inf)
}
