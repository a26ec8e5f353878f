// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "mentalk/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request structs against their validate tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the Echo server.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Validation failures surface as the
// domain's validation error so the error handler renders the unified envelope.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
