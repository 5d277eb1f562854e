package siteforge

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/imroc/req/v3"
)

var (
	// client / config
	ErrNoBaseURL    = errors.New("siteforge: base url missing")
	ErrInvalidEmail = errors.New("siteforge: invalid email")

	// session
	ErrNoSession = errors.New("siteforge: no active session")

	// files
	ErrFileNotFound    = errors.New("siteforge: local file not found")
	ErrUnsupportedType = errors.New("siteforge: unsupported file type")
)

// APIError is the error body returned by the SiteForge API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s - %s", e.Code, e.Message)
}

// StatusError reports a response whose HTTP status did not match the
// one the operation expects.
type StatusError struct {
	Op      string
	Want    int
	Got     int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d (want %d): %s", e.Op, e.Got, e.Want, e.Message)
}

// checkStatus is a helper that folds the transport error and the status
// assertion into one error, picking up the decoded API error body when
// the server sent one.
func checkStatus(resp *req.Response, requestErr error, want int, op string) error {
	if requestErr != nil {
		return fmt.Errorf("http request error: %s: %w", op, requestErr)
	}

	if resp.StatusCode == want {
		return nil
	}

	msg := http.StatusText(resp.StatusCode)
	if apiErr, ok := resp.ErrorResult().(*APIError); ok && apiErr.Message != "" {
		msg = apiErr.Message
	}

	return &StatusError{Op: op, Want: want, Got: resp.StatusCode, Message: msg}
}
