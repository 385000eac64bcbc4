package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// phonePattern is a ten-digit Indian mobile number, optional +91 prefix.
var phonePattern = regexp.MustCompile(`^(?:\+91)?[6-9]\d{9}$`)

// New returns a validator with the custom tags registered. Field names in
// errors are the json names, so namespaces read like members[2].email.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone_in", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("nomarkup", func(fl validator.FieldLevel) bool {
		return !HasMarkup(fl.Field().String())
	})
	_ = v.RegisterValidation("school", func(fl validator.FieldLevel) bool {
		_, ok := models.CanonicalSchool(fl.Field().String())
		return ok
	})

	return v
}

// IsValidPhone applies the mobile number rule to a trimmed value.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// Struct validates s and translates failures into field-attributed
// ValidationErrors. It returns nil when s is valid.
func Struct(v *validator.Validate, s interface{}) error {
	if errs := structErrors(v, s); len(errs) > 0 {
		return errs
	}
	return nil
}

func structErrors(v *validator.Validate, s interface{}) apperrors.ValidationErrors {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ValidationErrors{{Message: err.Error()}}
	}

	out := make(apperrors.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &apperrors.ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldPath strips the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	isList := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array
	unit := "entries"
	if fe.Field() == "members" {
		unit = "members"
	}
	switch fe.Tag() {
	case "required":
		if isList {
			return "at least one entry is required"
		}
		return "is required"
	case "min":
		if isList {
			return "must have at least " + fe.Param() + " " + unit
		}
		return "must be at least " + fe.Param() + " characters"
	case "max":
		if isList {
			return "must have at most " + fe.Param() + " " + unit
		}
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "phone_in":
		return "must be a valid 10-digit mobile number"
	case "school":
		return "must be one of the listed schools"
	case "nomarkup":
		return "must not contain markup"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
