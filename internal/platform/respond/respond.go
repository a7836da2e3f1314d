// Copyright (c) 2026 Municipio. All rights reserved.

// Package respond translates service-layer outcomes into HTTP responses.
//
// # Architecture
//
// This package is the single point where an either.Either leaving the
// service layer becomes a transport response. Success values are written as
// raw JSON bodies; failures go through a fixed dispatch table from
// [domerr.Kind] to HTTP status. The table is total over the closed variant
// set and falls back to 400 for any kind it does not recognize.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/civita/municipio/internal/platform/ctxutil"
	"github.com/civita/municipio/internal/platform/domerr"
	"github.com/civita/municipio/internal/platform/either"
	"github.com/civita/municipio/internal/platform/validate"
)

// violationEnvelope is the JSON body for request validation failures.
type violationEnvelope struct {
	Title      string               `json:"title"`
	Status     int                  `json:"status"`
	Violations []validate.Violation `json:"violations"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// # Outcome Dispatch

// Result writes the outcome of a value-producing operation.
//
// A success is written with the given status code and the value as the raw
// JSON body. A failure goes through the error dispatch table.
func Result[T any](writer http.ResponseWriter, request *http.Request, outcome either.Either[*domerr.Error, T], successStatus int) {
	if failure, ok := outcome.Left(); ok {
		DomainError(writer, request, failure)
		return
	}

	value, _ := outcome.Right()
	JSON(writer, successStatus, value)
}

// Empty writes the outcome of an operation that produces no body.
//
// A success becomes 204 No Content; a failure goes through the error
// dispatch table.
func Empty[T any](writer http.ResponseWriter, request *http.Request, outcome either.Either[*domerr.Error, T]) {
	if failure, ok := outcome.Left(); ok {
		DomainError(writer, request, failure)
		return
	}

	NoContent(writer)
}

// DomainError writes a structured error body with the status chosen by the
// dispatch table. A nil error is replaced by the generic fallback so the
// client always receives a well-formed payload.
func DomainError(writer http.ResponseWriter, request *http.Request, failure *domerr.Error) {
	if failure == nil {
		failure = domerr.Generic()
	}

	status := statusFor(failure)

	// 5xx responses indicate server-side faults and are always logged.
	if status >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "domain_error_dispatched",
			slog.String("kind", failure.Kind.String()),
			slog.String("origin", failure.Origin),
			slog.String("message", failure.Message),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
	}

	JSON(writer, status, failure)
}

// Violations writes a 400 response carrying every field-level violation.
func Violations(writer http.ResponseWriter, violations *validate.ViolationError) {
	JSON(writer, http.StatusBadRequest, violationEnvelope{
		Title:      "Constraint Violation",
		Status:     http.StatusBadRequest,
		Violations: violations.Violations,
	})
}

// statusFor is the dispatch table from error variant to HTTP status.
//
// The default case catches variants added without a mapping.
func statusFor(failure *domerr.Error) int {
	switch failure.Kind {
	case domerr.KindNotFound:
		return http.StatusNotFound
	case domerr.KindServerError:
		return http.StatusInternalServerError
	case domerr.KindGeneric:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
