package datasource

import "fmt"

// NetworkError indicates the request could not be sent or timed out
// before a response arrived.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError indicates the API key was missing or rejected (HTTP 401)
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication failed: %s", e.Message)
	}
	return "authentication failed: invalid or missing API key"
}

// NotFoundError indicates the city was not recognized (HTTP 404)
type NotFoundError struct {
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("city not found: %s", e.City)
}

// RateLimitError indicates the provider throttled the request (HTTP 429)
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rate limited: %s", e.Message)
	}
	return "rate limited: too many requests"
}

// ParseError indicates the response body was not valid JSON or lacked
// fields required to build a complete record.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("bad response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIError covers any other non-200 status the provider returns
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}
