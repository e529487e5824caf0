package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
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

const (
	CodeProcessoNotFound = "PROCESSO_NOT_FOUND"
	CodeProcessoInvalid  = "PROCESSO_INVALID"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeBadRequest       = "BAD_REQUEST"
	CodeInternal         = "INTERNAL_ERROR"
)

// APIError is the payload of every failed request.
// ErrorCode is the machine readable code, Message is meant for humans.
type APIError struct {
	ErrorCode string              `json:"code"`
	Message   string              `json:"message"`
	Errors    map[string][]string `json:"errors,omitempty"`
	Status    int                 `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

func (a *APIError) Add(field, problem string) {
	if a.Errors == nil {
		a.Errors = make(map[string][]string)
	}
	a.Errors[field] = append(a.Errors[field], problem)
}

var (
	InternalServerError   = NewSimple(http.StatusInternalServerError, CodeInternal, "Internal server error")
	NotFoundError         = NewSimple(http.StatusNotFound, CodeNotFound, "Resource not found")
	MethodNotAllowedError = NewSimple(http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed")
)

func FromValidationError(err error) *APIError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	apierr := &APIError{
		ErrorCode: CodeInvalidParameter,
		Status:    http.StatusBadRequest,
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			apierr.Add(field, "This field is required")
		case "min":
			apierr.Add(field, "Value must not be less than "+fe.Param())
		case "max":
			apierr.Add(field, "Value must not be greater than "+fe.Param())
		case "nospaces":
			apierr.Add(field, "Value must not contain whitespaces")
		case "oneof":
			apierr.Add(field, "Value must be one of: "+fe.Param())

		default:
			apierr.Add(field, "Invalid value provided")
		}
	}

	apierr.Message = summarize(apierr.Errors)
	return apierr
}

func NewSimple(status int, code, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, ErrorCode: code, Message: msg}
}

func NewProcessoNotFoundError(numero string) *APIError {
	return NewSimple(http.StatusNotFound, CodeProcessoNotFound, "Processo %s não encontrado", numero)
}

// NewProcessoInvalidError is returned when the processo exists but has no
// tramitação that can be displayed. It shares the 404 status with
// NewProcessoNotFoundError, since the client cannot act on it either way.
func NewProcessoInvalidError(numero string) *APIError {
	return NewSimple(http.StatusNotFound, CodeProcessoInvalid, "Processo %s não possui tramitações válidas", numero)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	apierr := NewSimple(http.StatusBadRequest, CodeInvalidParameter,
		"Parameter '%s' has invalid type, expected: %s", name, dataType)
	apierr.Add(name, "Invalid type, expected: "+dataType)
	return apierr
}

// summarize flattens the field problems into a single sorted message,
// like "limit: Value must not be greater than 100".
func summarize(problems map[string][]string) string {
	fields := make([]string, 0, len(problems))
	for field := range problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(problems[field], ", "))
	}
	return strings.Join(parts, "; ")
}
