package todoapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"taskmgr/internal/service"
)

// ErrTimeout is returned when a request exceeds the configured timeout.
var ErrTimeout = errors.New("request timed out")

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// APIError is a non-2xx response from the API.
// Message is the server-provided "message" field when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps any 4xx to service.ErrRejected, plus 401/403 to
// service.ErrUnauthorized and 404 to service.ErrNotFound.
func (e *APIError) Unwrap() []error {
	if e.StatusCode < 400 || e.StatusCode > 499 {
		return nil
	}
	errs := []error{service.ErrRejected}
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		errs = append(errs, service.ErrUnauthorized)
	case http.StatusNotFound:
		errs = append(errs, service.ErrNotFound)
	}
	return errs
}

// IsRejected reports whether err is a 4xx answer from the API.
func IsRejected(err error) bool {
	return errors.Is(err, service.ErrRejected)
}

// IsUnauthorized reports whether err is a 401 or 403 from the API.
func IsUnauthorized(err error) bool {
	return errors.Is(err, service.ErrUnauthorized)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return errors.Is(err, service.ErrNotFound)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil {
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	// Some proxies answer with plain text.
	if text := strings.TrimSpace(string(data)); !strings.HasPrefix(text, "<") {
		apiErr.Message = text
	}
	return apiErr
}
