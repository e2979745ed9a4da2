package model

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Error codes
const (
	DBError             = "DB_ERROR"
	BadRequestError     = "BAD_REQUEST"
	ValidationError     = "VALIDATION_ERROR"
	InternalServerError = "INTERNAL_SERVER_ERROR"
)

// ErrTodoIDExists is returned when a todo with the same id is already stored.
var ErrTodoIDExists = errors.New("todoId already exists")

// Error is the application error carried from repositories up to the router.
type Error struct {
	Code    string
	Message string
	Status  int
	err     error
}

func (e *Error) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.err)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.err
}

// Cause implements github.com/pkg/errors causer.
func (e *Error) Cause() error {
	return e.err
}

func newError(code string, status int, message string, err error) *Error {
	if err != nil {
		err = errors.WithStack(err)
	}
	return &Error{Code: code, Message: message, Status: status, err: err}
}

// NewDBError returns an error for a failed store operation.
func NewDBError(e error) error {
	return newError(DBError, http.StatusInternalServerError, "Internal Server Error", e)
}

// NewInvalidParamError returns an error for a malformed request parameter.
func NewInvalidParamError(message string) error {
	return newError(BadRequestError, http.StatusBadRequest, message, nil)
}

// NewValidationError returns an error for a request field that failed validation.
func NewValidationError(message string) error {
	return newError(ValidationError, http.StatusBadRequest, message, nil)
}

// NewInternalServerError returns an error for an unexpected failure.
func NewInternalServerError(e error) error {
	return newError(InternalServerError, http.StatusInternalServerError, "Internal Server Error", e)
}

// IsDuplicateID reports whether err signals an id collision on create.
func IsDuplicateID(err error) bool {
	return errors.Is(err, ErrTodoIDExists)
}

// AsError extracts the application error from err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
