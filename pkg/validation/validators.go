package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/season-link/profiles/internal/domain"
	"github.com/season-link/profiles/pkg/apperror"
)

// E164-like phone: optional +, digits 7-15 length
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// RegisterValidators registers custom field validators and the struct-level
// window checks to the validator instance.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)

	v.RegisterStructValidation(CandidateStructLevel, domain.Candidate{})
	v.RegisterStructValidation(ExperienceStructLevel, domain.Experience{})
	v.RegisterStructValidation(CandidateFilterStructLevel, domain.CandidateFilter{})
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}

// The struct-level checks below enforce the ordered-pair invariants. They run
// on every validation pass, including when field-level rules already failed,
// and report under the entity name so schema violations stay distinguishable
// from per-field ones.

func CandidateStructLevel(sl validator.StructLevel) {
	c := sl.Current().Interface().(domain.Candidate)
	if !c.AvailableFrom.Before(c.AvailableTo) {
		sl.ReportError(c.AvailableFrom, "Candidate", "Candidate", "window", "available_from,available_to")
	}
}

func ExperienceStructLevel(sl validator.StructLevel) {
	e := sl.Current().Interface().(domain.Experience)
	if !e.StartTime.Before(e.EndTime) {
		sl.ReportError(e.StartTime, "Experience", "Experience", "window", "start_time,end_time")
	}
}

func CandidateFilterStructLevel(sl validator.StructLevel) {
	f := sl.Current().Interface().(domain.CandidateFilter)
	if !f.StartDate.Before(f.EndDate) {
		sl.ReportError(f.StartDate, "ListCandidate", "ListCandidate", "window", "start_date,end_date")
	}
}

// Validate runs the validator and folds all violations, field-level and
// schema-level alike, into a single aggregated validation error.
func Validate(v *validator.Validate, s interface{}) error {
	if err := v.Struct(s); err != nil {
		return apperror.Validation(FormatValidationErrors(err))
	}
	return nil
}
