package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Report type validation
	validate.RegisterValidation("report_type", func(fl validator.FieldLevel) bool {
		t := fl.Field().String()
		validTypes := []string{"spam", "harassment", "inappropriate", "off_topic", "other"}
		for _, v := range validTypes {
			if t == v {
				return true
			}
		}
		return false
	})

	// Report status validation
	validate.RegisterValidation("report_status", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		validStatuses := []string{"pending", "reviewing", "resolved", "dismissed"}
		for _, v := range validStatuses {
			if s == v {
				return true
			}
		}
		return false
	})

	// Admin role validation
	validate.RegisterValidation("admin_role", func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		return role == "admin" || role == "moderator"
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "report_type":
			errors[field] = "Invalid report type. Must be: spam, harassment, inappropriate, off_topic, or other"
		case "report_status":
			errors[field] = "Invalid status. Must be: pending, reviewing, resolved, or dismissed"
		case "admin_role":
			errors[field] = "Invalid role. Must be: admin or moderator"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
