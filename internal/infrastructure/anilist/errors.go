package anilist

import (
	"fmt"
	"net/http"
	"strings"
)

// APIError reports a failed catalog request, either a non-2xx status or
// GraphQL errors in a 200 response.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if e == nil {
		return "anilist error"
	}
	if len(e.Messages) == 0 {
		return fmt.Sprintf("anilist: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("anilist: HTTP %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// Temporary reports whether the request may succeed if sent again.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// notFound reports whether the catalog said the media does not exist.
func (e *APIError) notFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func newAPIError(status int, errs []graphQLError) *APIError {
	apiErr := &APIError{StatusCode: status}
	for _, ge := range errs {
		apiErr.Messages = append(apiErr.Messages, ge.Message)
		if apiErr.StatusCode == http.StatusOK && ge.Status != 0 {
			apiErr.StatusCode = ge.Status
		}
	}
	return apiErr
}
