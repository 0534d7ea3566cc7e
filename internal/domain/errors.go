package domain

import "fmt"

// ValidationError indicates bad or missing client input. Msg is safe to
// return to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError.
func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// ConfigurationError indicates a required configuration value is unset.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return e.Key + " environment variable is not set"
}

// ProviderError is a transport, auth or validation failure reported by the
// text generation provider.
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %s: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ResponseParseError means the provider answered but the generated text could
// not be extracted from the response.
type ResponseParseError struct {
	Reason string
	Err    error
}

func (e *ResponseParseError) Error() string {
	if e.Err != nil {
		return "parse provider response: " + e.Reason + ": " + e.Err.Error()
	}
	return "parse provider response: " + e.Reason
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

// StoreError wraps a failure of the persistence layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// WrapStore returns nil when err is nil, otherwise a *StoreError for op.
func WrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
