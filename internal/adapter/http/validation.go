package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reHHMM = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// 24h wall-clock time, e.g. "09:00" or "23:59"
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return reHHMM.MatchString(fl.Field().String())
	})
	// report lifecycle states
	_ = v.RegisterValidation("reportstatus", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "DRAFT", "SUBMITTED", "APPROVED", "REJECTED":
			return true
		}
		return false
	})
	// review decisions: the two terminal states only
	_ = v.RegisterValidation("reviewdecision", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "APPROVED" || s == "REJECTED"
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hhmm":
			out = append(out, FieldError{Field: field, Message: "must be a 24h time in HH:MM format"})
		case "reportstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of DRAFT, SUBMITTED, APPROVED, REJECTED"})
		case "reviewdecision":
			out = append(out, FieldError{Field: field, Message: "must be APPROVED or REJECTED"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
