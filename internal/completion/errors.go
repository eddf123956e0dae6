package completion

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a hosted provider has no credentials.
var ErrMissingAPIKey = errors.New("api key is required")

// ServiceError reports a non-success response from a completion service.
type ServiceError struct {
	Provider   string
	StatusCode int
	Body       string
}

// Error returns a readable message for the failed response.
func (err *ServiceError) Error() string {
	if err.Body == "" {
		return fmt.Sprintf("%s error: status %d", err.Provider, err.StatusCode)
	}
	return fmt.Sprintf("%s error: status %d: %s", err.Provider, err.StatusCode, err.Body)
}
