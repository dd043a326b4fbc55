package model

import "github.com/m-mizutani/goerr/v2"

// ErrValidation is returned when a request record fails validation. It is
// raised before any store or provider call.
var ErrValidation = goerr.New("validation error")

// Context keys for error values
const (
	FieldKey = "field"
	TagKey   = "tag"
	ValueKey = "value"
)
