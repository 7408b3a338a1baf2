// Package ai talks to chat-completions style text generation providers.
// It exposes a small Provider interface, an HTTP client for any
// OpenAI-compatible endpoint, an ordered fallback chain, and an optional
// Redis-backed memoization wrapper keyed by prompt hash.
package ai

import (
	"context"
	"errors"
	"fmt"
)

// Request is one completion request. System may be empty.
type Request struct {
	System string
	Prompt string
}

// Provider produces completion text for a request.
//
// Implementations must be safe for concurrent use and honor the context for
// cancellation. Failures are reported as *ProviderError so callers can
// distinguish retryable external trouble from misconfiguration.
type Provider interface {
	// Name identifies the provider in logs and error messages.
	Name() string
	// Complete returns the raw response text for the request.
	Complete(ctx context.Context, req Request) (string, error)
}

// ProviderError describes a failed provider call. Retryable marks the
// external failure class (network trouble, rate limiting, server errors,
// malformed responses) that should advance a fallback chain; auth and
// request errors are not retryable since every provider in the chain would
// be called with the same misconfiguration.
type ProviderError struct {
	Provider  string
	Status    int // HTTP status, 0 for transport-level failures
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("provider %s: status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ProviderError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is a retryable provider failure.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// ErrNoProvider is returned by a chain with no configured providers.
var ErrNoProvider = errors.New("no text generation provider configured")
