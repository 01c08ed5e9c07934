package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pKa1/loveSonia/pkg/aitunnel"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")

	// ErrProviderTimeout is returned for HTTP 408/504 answers and deadlines.
	ErrProviderTimeout = errors.New("provider timeout")
	// ErrProviderRateLimited is returned for HTTP 429. The manager moves on to
	// the next provider without retrying.
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// classify maps a chat client error onto the package sentinels.
func classify(err error) error {
	var apiErr *aitunnel.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	case errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusRequestTimeout || apiErr.StatusCode == http.StatusGatewayTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	return err
}

// ProviderError ties an error to the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
