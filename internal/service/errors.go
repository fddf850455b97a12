package service

import "fmt"

// ValidationError indicates the caller supplied unusable input.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// UpstreamError indicates a failure talking to the search API or the language model.
type UpstreamError struct {
	Source  string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

// Unwrap exposes the transport error, if any.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// SchemaError indicates an upstream payload did not match the expected model.
type SchemaError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s returned an unexpected payload: %v", e.Source, e.Err)
}

// Unwrap exposes the decoding error.
func (e *SchemaError) Unwrap() error {
	return e.Err
}
