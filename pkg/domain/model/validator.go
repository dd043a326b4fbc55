package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so messages match the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("mitigation_status", func(fl validator.FieldLevel) bool {
		return types.MitigationStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return types.Role(fl.Field().String()).IsValid()
	})

	return v
}

// validateStruct runs tag validation and converts the first failure into
// an ErrValidation with a readable message.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return goerr.Wrap(ErrValidation, err.Error())
	}

	fe := fieldErrs[0]
	opts := []goerr.Option{
		goerr.V(FieldKey, fe.Field()),
		goerr.V(TagKey, fe.Tag()),
	}
	// Only enum fields carry a rejected value worth logging
	if fe.Tag() != "required" {
		opts = append(opts, goerr.V(ValueKey, fe.Value()))
	}
	return goerr.Wrap(ErrValidation, fieldMessage(fe), opts...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "mitigation_status":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), joinValues(types.AllMitigationStatuses()))
	case "role":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), joinValues(types.AllRoles()))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func joinValues[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprintf("%q", string(v))
	}
	return strings.Join(s, ", ")
}
