// Copyright (c) 2026 Municipio. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// violations before returning a single [*ViolationError].
//
// # Architecture
//
// Validation is a transport-layer concern: handlers reject malformed input
// before it ever reaches the service, so the service and gateway only
// operate on semantically valid data.
package validate

import (
	"fmt"
	"strings"
)

// Violation is a single field-level validation failure.
type Violation struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// ViolationError aggregates every violation found in one request.
//
// It implements the error interface so validation can flow through ordinary
// error returns; the dispatcher serializes it as a 400 payload.
type ViolationError struct {
	Violations []Violation `json:"violations"`
}

// Error implements the error interface.
func (e *ViolationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		messages = append(messages, violation.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = &ViolationError{
	Violations: []Violation{{Field: "body", Message: "the request body is not valid JSON"}},
}

// Validator collects field-level violations via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request.
type Validator struct {
	violations []Violation
}

// Required fails with the given message if the trimmed value is empty.
func (v *Validator) Required(field, value, message string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, message)
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max float64) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("must be between %g and %g", min, max))
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.violations) > 0
}

// Err returns a [*ViolationError] if any rules failed, or nil if all passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() *ViolationError {
	if len(v.violations) == 0 {
		return nil
	}
	return &ViolationError{Violations: v.violations}
}

// add appends a [Violation] to the internal slice.
func (v *Validator) add(field, message string) {
	v.violations = append(v.violations, Violation{Field: field, Message: message})
}
