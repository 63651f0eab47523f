package service

import "fmt"

// ValidationError reports a missing or invalid request field. It is raised
// before any external call and maps to a client error at the API boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// GenerationError wraps a failure of the generation service itself, such as a
// network error or an empty candidate list.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// DecodeError reports that sanitized model output failed to parse as JSON.
// Raw holds the offending text for server-side logging; it must never be
// returned to the caller.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode model output: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
