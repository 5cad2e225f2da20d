package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"catalog-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateRequest checks the validate tags of req and returns an
// *apperror.ValidationError listing every violation.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &apperror.ValidationError{Violations: []apperror.FieldViolation{{Field: "request", Message: err.Error()}}}
	}

	violations := make([]apperror.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, apperror.FieldViolation{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return &apperror.ValidationError{Violations: violations}
}

// fieldPath drops the struct name prefix: "CategoryDTO.products[0].name" -> "products[0].name".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "numeric":
		return "must be a decimal number"
	}
	return fmt.Sprintf("failed on %q", fe.Tag())
}
