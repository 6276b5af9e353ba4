package apperror

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

type Kind uint8

const (
	KindBadRequest Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

var (
	ErrNotFound   = &AppError{Kind: KindNotFound, Message: "not found"}
	ErrConflict   = &AppError{Kind: KindConflict, Message: "conflict"}
	ErrDecodeBody = NewAppError("failed to decode request body")
)

var now = time.Now

type AppError struct {
	Kind    Kind              `json:"-"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func NewAppError(message string) *AppError {
	return &AppError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

func NewNotFoundErr(entity string, id int64) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found with id: %d", entity, id),
	}
}

func NewConflictErr(message string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: message,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches any error of the same kind against the ErrNotFound and ErrConflict
// sentinels, and otherwise requires the same kind and message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}

	if t == ErrNotFound || t == ErrConflict {
		return e.Kind == t.Kind
	}

	return e.Kind == t.Kind && e.Message == t.Message
}

func (e *AppError) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// Response is the body written for every failed request.
type Response struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
}

func NewResponse(status int, message string, details map[string]string) Response {
	return Response{
		Timestamp: now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Details:   details,
	}
}

func (r Response) Marshal() []byte {
	marshal, err := json.Marshal(r)
	if err != nil {
		return nil
	}
	return marshal
}

// NewValidationErr builds a field -> message map out of validator errors.
// messages may override the text for a "field.tag" pair.
func NewValidationErr(errs validator.ValidationErrors, messages map[string]string) *AppError {
	details := make(map[string]string, len(errs))

	for _, err := range errs {
		if _, exists := details[err.Field()]; exists {
			continue
		}

		if msg, ok := messages[err.Field()+"."+err.ActualTag()]; ok {
			details[err.Field()] = msg
			continue
		}

		switch err.ActualTag() {
		case "required":
			details[err.Field()] = fmt.Sprintf("field %s is a required field", err.Field())
		case "notblank":
			details[err.Field()] = fmt.Sprintf("field %s must not be blank", err.Field())
		case "min":
			details[err.Field()] = fmt.Sprintf("the minimum length of the %s field is %s characters", err.Field(), err.Param())
		case "max":
			details[err.Field()] = fmt.Sprintf("the maximum length of the %s field is %s characters", err.Field(), err.Param())
		case "gt":
			details[err.Field()] = fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param())
		default:
			details[err.Field()] = fmt.Sprintf("field %s is not valid", err.Field())
		}
	}

	return &AppError{
		Kind:    KindValidation,
		Message: "Validation failed",
		Details: details,
	}
}

func internalError() Response {
	return NewResponse(http.StatusInternalServerError, "An unexpected error occurred", nil)
}
