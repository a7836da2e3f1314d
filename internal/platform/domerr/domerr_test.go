// Copyright (c) 2026 Municipio. All rights reserved.

package domerr_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civita/municipio/internal/platform/domerr"
)

/*
TestConstructors verifies kind, message, origin, and timestamp assignment.
*/
func TestConstructors(t *testing.T) {
	before := time.Now()

	t.Run("not_found", func(t *testing.T) {
		err := domerr.NotFound("municipality.PostgresRepository")

		assert.Equal(t, domerr.KindNotFound, err.Kind)
		assert.Equal(t, "municipality not found", err.Message)
		assert.Equal(t, "municipality.PostgresRepository", err.Origin)
		assert.False(t, err.TimeStamp.Before(before))
	})

	t.Run("server_error", func(t *testing.T) {
		err := domerr.ServerError("connection refused", "municipality.PostgresRepository")

		assert.Equal(t, domerr.KindServerError, err.Kind)
		assert.Equal(t, "connection refused", err.Message)
		assert.Equal(t, "municipality.PostgresRepository", err.Origin)
	})

	t.Run("generic", func(t *testing.T) {
		err := domerr.Generic()

		assert.Equal(t, domerr.KindGeneric, err.Kind)
		assert.NotEmpty(t, err.Message)
		assert.Equal(t, "unknown", err.Origin)
	})
}

/*
TestError_JSONShape verifies the wire field names of the error payload.
*/
func TestError_JSONShape(t *testing.T) {
	err := domerr.ServerError("boom", "municipality.Service")

	raw, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, "boom", payload["message"])
	assert.Equal(t, "municipality.Service", payload["classHappen"])
	assert.Contains(t, payload, "timeStamp")

	// The discriminator never leaks onto the wire.
	assert.NotContains(t, payload, "Kind")
}

/*
TestError_Interface verifies the error interface implementation.
*/
func TestError_Interface(t *testing.T) {
	var err error = domerr.NotFound("municipality.Handler")
	assert.Equal(t, "municipality not found", err.Error())
}

/*
TestKind_String covers variant names used in structured logs.
*/
func TestKind_String(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", domerr.KindNotFound.String())
	assert.Equal(t, "SERVER_ERROR", domerr.KindServerError.String())
	assert.Equal(t, "GENERIC", domerr.KindGeneric.String())
	assert.Equal(t, "UNKNOWN", domerr.Kind(99).String())
}
