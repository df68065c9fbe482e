// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator validates bound request structs against their validate tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator installed on the echo server.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as 400s so handlers
// can simply return the error.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
