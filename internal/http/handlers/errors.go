// Package handlers defines the HTTP-layer error codes used across all API
// endpoints.
//
// Codes are lowercase snake_case and stable: clients branch on them for
// programmatic error handling, while the accompanying message stays
// human-readable. Generic codes mirror common HTTP status semantics;
// domain-specific codes cover business failures a status alone cannot
// convey (e.g. out_of_stock on a 409).
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeGenerationFailed  = "generation_failed"
	ErrCodeListFailed        = "list_failed"
	ErrCodeOutOfStock        = "out_of_stock"
	ErrCodeInvalidTransition = "invalid_transition"
	ErrCodeOrderTerminal     = "order_terminal"
	ErrCodeSyncFailed        = "sync_failed"
	ErrCodeMethodNotAllowed  = "method_not_allowed"
)
