package app

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"hoteldesk/internal/domain"
)

// Money amounts travel as strings with at most two decimal places,
// mirroring the DECIMAL(10,2) columns underneath.
var decimal2Re = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

// NewValidator builds the validator used on every write path. Field
// names in error output follow the json tags so failures key by the
// wire-level field.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("decimal2", func(fl validator.FieldLevel) bool {
		return decimal2Re.MatchString(fl.Field().String())
	})
	return v
}

func checkStruct(v *validator.Validate, s any) domain.FieldErrors {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.FieldErrors{"non_field_errors": err.Error()}
	}
	out := domain.FieldErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = messageFor(fe)
		}
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "e164":
		return "Enter a valid phone number (E.164, e.g. +12125551234)."
	case "min":
		return "Ensure this value is at least " + fe.Param() + "."
	case "max":
		return "Ensure this value is at most " + fe.Param() + "."
	case "decimal2":
		return "Enter a valid amount with no more than 2 decimal places."
	default:
		return "Invalid value."
	}
}
