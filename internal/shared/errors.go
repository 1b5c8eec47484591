package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrTimeout          = fmt.Errorf("operation timed out")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTokenExpired     = fmt.Errorf("access token expired")

	// Backend API errors. Entitlement and quota denials are terminal for
	// the request and never retried client-side.
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrProPlanRequired    = fmt.Errorf("pro plan required")
	ErrQuotaExceeded      = fmt.Errorf("generation quota exceeded")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrPlaylistNotFound   = fmt.Errorf("playlist not found")
	ErrTrackNotFound      = fmt.Errorf("track not found")

	// Workflow errors
	ErrOperationPending = fmt.Errorf("operation already in progress")
	ErrNoPreview        = fmt.Errorf("no generation preview available")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
