package contact

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	lettersSpacesPattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phonePattern         = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("letters_spaces", func(fl validator.FieldLevel) bool {
		return lettersSpacesPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return v
}

// validateSubmitRequest checks every rule independently and reports all
// violations together. It expects an already-normalized request.
func validateSubmitRequest(req SubmitRequest) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "payload", Message: "Invalid payload"}}
	}

	fieldErrors := make([]FieldError, 0, len(violations))
	for _, violation := range violations {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   violation.Field(),
			Message: messageFor(violation.Field(), violation.Tag()),
		})
	}
	return fieldErrors
}

func messageFor(field, tag string) string {
	switch field {
	case "name":
		if tag == "required" {
			return "Name is required"
		}
		if tag == "letters_spaces" {
			return "Name can only contain letters and spaces"
		}
		return "Name must be between 2 and 100 characters"
	case "email":
		if tag == "required" {
			return "Email is required"
		}
		return "Please provide a valid email address"
	case "phone":
		if tag == "required" {
			return "Phone number is required"
		}
		return "Please provide a valid phone number"
	case "city":
		if tag == "required" {
			return "City is required"
		}
		return "City must be between 2 and 100 characters"
	case "enquiryType":
		if tag == "required" {
			return "Enquiry type is required"
		}
		return "Enquiry type must be either franchise, contact, or general"
	case "message":
		if tag == "required" {
			return "Message is required"
		}
		return "Message must be between 10 and 1000 characters"
	}
	return "Invalid value"
}
