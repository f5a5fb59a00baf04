package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

var ErrBadRequest = fmt.Errorf("bad request")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrConflict = fmt.Errorf("conflict")
var ErrInternal = fmt.Errorf("internal error")
var ErrNotFound = fmt.Errorf("not found")
var ErrRequest = fmt.Errorf("request error")
var ErrTypeConversion = fmt.Errorf("type conversion failed")
var ErrUnauthorized = fmt.Errorf("unauthorized")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewBadRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadRequest,
	}
}

func NewConflictError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrConflict,
	}
}

func NewInternalError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInternal,
	}
}

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewUnauthorizedError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnauthorized,
	}
}

// ServiceError is a single entry of the error list returned by the remote service
type ServiceError struct {
	Key     string `json:"error_key"`
	Message string `json:"error_message"`
}

// NewErrorFromResponse maps an error response from the remote service to one
// of the sentinel errors in this package
func NewErrorFromResponse(code int, body []byte) error {
	report := []ServiceError{}

	if len(body) > 0 {
		err := json.Unmarshal(body, &report)
		if err != nil {
			return fmt.Errorf("failed to process error response (code %d): %s (%w)", code, err.Error(), ErrBadResponse)
		}
	}

	messages := make([]string, 0, len(report))
	for _, e := range report {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Key, e.Message))
	}

	detail := strings.Join(messages, "; ")
	if detail == "" {
		detail = http.StatusText(code)
	}

	switch code {
	case http.StatusBadRequest:
		return NewBadRequestError(detail)
	case http.StatusUnauthorized, http.StatusForbidden:
		return NewUnauthorizedError(detail)
	case http.StatusNotFound:
		return NewNotFoundError(detail)
	case http.StatusConflict:
		return NewConflictError(detail)
	}

	return NewInternalError(fmt.Sprintf("[code: %d] %s", code, detail))
}
