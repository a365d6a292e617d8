package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")
	ErrInvalidID  = errors.New("invalid record id")

	// ErrSuperseded marks a result discarded because a newer request for the
	// same input started while it was in flight.
	ErrSuperseded = errors.New("superseded by a newer request")
)

// HttpError is an error that already knows the status code and the message
// shown to the operator.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// BackendError is a non-2xx answer from the REST backend. Message holds the
// backend's errors.default value and may be empty.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.Status)
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

// UserMessage picks the text shown in the alert: the backend message when
// there is one, the fallback otherwise.
func UserMessage(err error, fallback string) string {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	var he *HttpError
	if errors.As(err, &he) && he.Message != "" {
		return he.Message
	}
	return fallback
}

// StatusCode maps an error to the HTTP status the console answers with.
func StatusCode(err error) int {
	var he *HttpError
	if errors.As(err, &he) {
		return he.Code
	}
	var be *BackendError
	if errors.As(err, &be) {
		if be.Status == http.StatusNotFound {
			return http.StatusNotFound
		}
		if be.Status >= 400 && be.Status < 500 {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
