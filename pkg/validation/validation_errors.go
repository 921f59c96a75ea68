package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Candidate fields
	"FirstName":            "First name",
	"LastName":             "Last name",
	"BirthDate":            "Birth date",
	"NationalityCountryID": "Nationality country",
	"Description":          "Description",
	"Email":                "Email",
	"PhoneCountryID":       "Phone country code",
	"PhoneNumber":          "Phone number",
	"Address":              "Address",
	"Gender":               "Gender",
	"AvailableFrom":        "Available from",
	"AvailableTo":          "Available to",
	"Place":                "Place",
	"JobID":                "Job",

	// Experience fields
	"CompanyName": "Company name",
	"StartTime":   "Start time",
	"EndTime":     "End time",

	// Listing filter fields
	"StartDate":         "Start date",
	"EndDate":           "End date",
	"SubscriptionLevel": "Subscription level",

	// Create request fields
	"Password": "Password",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	tag := e.Tag()
	param := e.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s: is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "len":
		return fmt.Sprintf("%s: must be exactly %s characters", label, param)

	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "email":
		return fmt.Sprintf("%s: is not a valid email address", label)

	case "valid_phone":
		return fmt.Sprintf("%s: is not a valid phone number (7-15 digits, optional +)", label)

	case "gte":
		return fmt.Sprintf("%s: must be %s or greater", label, param)

	case "lte":
		return fmt.Sprintf("%s: must be %s or smaller", label, param)

	case "window":
		// Schema-level ordered-pair violation, reported under the entity name
		pair := strings.SplitN(param, ",", 2)
		if len(pair) == 2 {
			return fmt.Sprintf("%s: %s must be strictly earlier than %s", label, pair[0], pair[1])
		}
		return fmt.Sprintf("%s: time window is inverted", label)

	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, tag)
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
