package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// StatusError is a non-2xx answer from the OTP backend. It unwraps to the
// sentinel matching its status code, so callers can use errors.Is.
type StatusError struct {
	StatusCode int
	Body       string

	kind error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %s", e.kind, e.Message())
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// Message is the server text, or the status text when the body was empty.
func (e *StatusError) Message() string {
	if e.Body == "" {
		return http.StatusText(e.StatusCode)
	}
	return e.Body
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var kind error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusForbidden:
		kind = ErrForbidden
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusConflict:
		kind = ErrConflict
	case http.StatusTooManyRequests:
		kind = ErrTooManyRequests
	case http.StatusInternalServerError:
		kind = ErrInternalServerError
	case http.StatusBadGateway:
		kind = ErrBadGateway
	case http.StatusServiceUnavailable:
		kind = ErrServiceUnavailable
	default:
		kind = ErrUnexpectedStatus
	}

	return &StatusError{StatusCode: resp.StatusCode(), Body: body, kind: kind}
}
