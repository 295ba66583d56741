package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements Validator on top of go-playground/validator
// using the `validate` struct tags of the request models. Field names in
// reported violations are the JSON names of the fields.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a ready to use RequestValidator. It is safe for
// concurrent use; the underlying validator caches struct metadata.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// registering a static tag with a non-nil func cannot fail
	_ = v.RegisterValidation(bcryptTag, bcryptLength)

	return &RequestValidator{validate: v}
}

// Validate checks value against its struct tags. When fields are given only
// those Go struct fields (e.g. "Email") are checked.
//
// Returns nil, a [Violations] error listing every failed rule, or
// [ErrUnsupportedType] when value is not a struct.
func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	if value == nil {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}

	return translate(err)
}

// Violation is a single failed validation rule.
type Violation struct {
	Field string
	Rule  string
	Param string
}

func (v Violation) String() string {
	switch v.Rule {
	case "required":
		return v.Field + " is required"
	case "email":
		return v.Field + " must be a valid email"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", v.Field, v.Param)
	case bcryptTag:
		return fmt.Sprintf("%s must be at most %d bytes", v.Field, bcryptMaxBytes)
	case "min":
		if v.Param == "1" {
			return v.Field + " must not be empty"
		}
		return fmt.Sprintf("%s must be at least %s characters", v.Field, v.Param)
	default:
		return v.Field + " is invalid"
	}
}

// Violations is the error returned for a value breaking one or more rules.
type Violations []Violation

func (vs Violations) Error() string {
	msgs := make([]string, 0, len(vs))
	for _, v := range vs {
		msgs = append(msgs, v.String())
	}
	return strings.Join(msgs, "; ")
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalid.Type)
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		violations := make(Violations, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			violations = append(violations, Violation{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		return violations
	}

	return err
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// bcrypt rejects passwords longer than 72 bytes, while "max" counts runes.
const (
	bcryptTag      = "bcrypt"
	bcryptMaxBytes = 72
)

func bcryptLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= bcryptMaxBytes
}
