// Package validation checks `validate` struct tags with go-playground/validator and
// reports failures as errs types named after the field's `json` tag.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"supplychain/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// utf8 rejects text that encoding/json would rewrite with U+FFFD.
	_ = v.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	})
	return v
}

// ErrInvalidUTF8 is the cause attached to a utf8 tag failure.
var ErrInvalidUTF8 = errors.New("must be valid UTF-8")

// Struct validates s and joins one errs error per failing field.
//
// Tag mapping:
//   - required: errs.ValueIsRequiredError
//   - max, lte, lt, min, gte, gt: errs.ValueIsOutOfRangeError (rune count for strings)
//   - utf8: errs.ValueIsInvalidError caused by ErrInvalidUTF8
//   - anything else: errs.ValueIsInvalidError
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return err
	}

	out := make([]error, 0, len(failures))
	for _, fe := range failures {
		out = append(out, convert(fe))
	}
	return errors.Join(out...)
}

func convert(fe validator.FieldError) error {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return errs.NewValueIsRequiredError(field)
	case "max", "lte", "lt":
		if fe.Kind() == reflect.String {
			return errs.NewValueIsOutOfRangeError(field, utf8.RuneCountInString(fe.Value().(string)), 0, fe.Param())
		}
		return errs.NewValueIsOutOfRangeError(field, fe.Value(), "unbounded", fe.Param())
	case "min", "gte", "gt":
		if fe.Kind() == reflect.String {
			return errs.NewValueIsOutOfRangeError(field, utf8.RuneCountInString(fe.Value().(string)), fe.Param(), "unbounded")
		}
		return errs.NewValueIsOutOfRangeErrorWithCause(field, fe.Value(), fe.Param(), "unbounded",
			fmt.Errorf("must be %s %s", fe.Tag(), fe.Param()))
	case "utf8":
		return errs.NewValueIsInvalidErrorWithCause(field, ErrInvalidUTF8)
	default:
		return errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("failed %q check", fe.Tag()))
	}
}
