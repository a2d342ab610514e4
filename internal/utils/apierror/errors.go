package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

// Closed taxonomy: Validation (400), Unauthorized (401), Forbidden (403),
// Conflict (409), NotFound (404), Internal (500). Raw storage errors are
// logged, never serialized into a response.
var (
	MalformedBodyError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError           = NewSimple(404, "Resource not found")
	UnauthorizedError       = NewSimple(401, "Missing or invalid bearer token")
	MissingExpositorIDError = NewSimple(400, "An expositor id is required when the caller has no expositor profile")

	/*
	 * Ownership and uniqueness conflicts
	 */
	OwnershipError       = NewSimple(403, "Cannot register animals for another expositor")
	DuplicateRPError     = NewSimple(409, "An animal with this RP already exists for this expositor and breed")
	DuplicateCuitError   = NewSimple(409, "An expositor with this CUIT already exists")
	ProfileNotFoundError = NewSimple(404, "No expositor profile is linked to this account")
	NoActiveFlowError    = NewSimple(404, "No registration flow in progress")
	UnknownCuitError     = NewSimple(404, "No expositor matches the provided CUIT")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too small, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too large, max: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "cuit":
			problems[field] = append(problems[field], "CUIT must be exactly 11 digits")
		case "rp":
			problems[field] = append(problems[field], "RP must contain only uppercase letters, numbers and hyphens (1-50 chars)")
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "datetime":
			problems[field] = append(problems[field], "Value must be a calendar date (YYYY-MM-DD)")
		case "uuid":
			problems[field] = append(problems[field], "Value must be a valid UUID")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' is required", name)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
