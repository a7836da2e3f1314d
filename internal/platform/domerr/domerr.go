// Copyright (c) 2026 Municipio. All rights reserved.

/*
Package domerr defines the closed domain error taxonomy for Municipio.

Every failure that leaves the storage gateway is one of a fixed set of
variants, discriminated by [Kind]. Each error carries a client-safe message,
the time it was raised, and the name of the component that raised it.

Architecture:

  - Closed set: new variants require a new Kind constant, which the response
    dispatcher must map to a status (its default case catches omissions).
  - Immutability: errors are constructed at the point of failure and are
    never mutated or retried on the way to the transport boundary.
  - Wire shape: the JSON field names (message, timeStamp, classHappen) are
    part of the public API contract.
*/
package domerr

import "time"

// Kind discriminates the error variants.
type Kind int

const (
	// KindGeneric is the fallback for unclassified faults.
	KindGeneric Kind = iota

	// KindNotFound marks a lookup or write whose subject does not exist.
	KindNotFound

	// KindServerError wraps an unexpected storage or infrastructure fault.
	KindServerError
)

// String returns the variant name for logging.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindServerError:
		return "SERVER_ERROR"
	case KindGeneric:
		return "GENERIC"
	default:
		return "UNKNOWN"
	}
}

// Error is a single domain failure.
//
// It implements the error interface so it can travel through plain error
// returns as well as inside an either.Either.
type Error struct {
	// Kind discriminates the variant; it is not serialized, the dispatch
	// table turns it into an HTTP status instead.
	Kind Kind `json:"-"`

	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`

	// TimeStamp records when the error was raised.
	TimeStamp time.Time `json:"timeStamp"`

	// Origin names the component that raised the error.
	Origin string `json:"classHappen"`
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// notFoundMessage is the fixed message for every NotFound error.
const notFoundMessage = "municipality not found"

// NotFound creates a not-found error raised by the named component.
func NotFound(origin string) *Error {
	return &Error{
		Kind:      KindNotFound,
		Message:   notFoundMessage,
		TimeStamp: time.Now(),
		Origin:    origin,
	}
}

// ServerError wraps an unexpected fault description raised by the named
// component.
func ServerError(message, origin string) *Error {
	return &Error{
		Kind:      KindServerError,
		Message:   message,
		TimeStamp: time.Now(),
		Origin:    origin,
	}
}

// Generic creates the fallback error with default payload.
func Generic() *Error {
	return &Error{
		Kind:      KindGeneric,
		Message:   "an unexpected error occurred",
		TimeStamp: time.Now(),
		Origin:    "unknown",
	}
}
