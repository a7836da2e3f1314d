// Copyright (c) 2026 Municipio. All rights reserved.

package municipality_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civita/municipio/internal/municipality"
	"github.com/civita/municipio/internal/platform/domerr"
	"github.com/civita/municipio/internal/platform/either"
)

// newTestRouter mounts the municipality routes exactly as the server does.
func newTestRouter(repo municipality.Repository) http.Handler {
	service := municipality.NewService(repo, slog.Default())
	handler := municipality.NewHandler(service)

	router := chi.NewRouter()
	router.Mount("/municipality", handler.Routes())
	return router
}

const validBody = `{
	"regionCode": "09",
	"provinceCode": "048",
	"municipalityCode": "048017",
	"municipalitySigle": "FI",
	"municipalityName": "Firenze",
	"regionName": "Toscana",
	"cadastralCode": "D612",
	"territorialUnitType": "3",
	"capitalsMunicipality": "Firenze",
	"latitude": 43.7696,
	"longitude": 11.2558,
	"altitude": 50
}`

/*
TestCreateMunicipality_Valid verifies the happy path end to end: a fully
populated body yields 201 with the fixed confirmation payload.
*/
func TestCreateMunicipality_Valid(t *testing.T) {
	repo := &stubRepository{
		upsertResult: either.Right[*domerr.Error](testEntity()),
	}
	router := newTestRouter(repo)

	request := httptest.NewRequest(http.MethodPost, "/municipality/createMunicipality", strings.NewReader(validBody))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "municipality creation is ok", payload["message"])
}

/*
TestCreateMunicipality_MissingName verifies that omitting the municipality
name yields 400 with the matching violation message, without touching the
gateway.
*/
func TestCreateMunicipality_MissingName(t *testing.T) {
	repo := &stubRepository{}
	router := newTestRouter(repo)

	body := `{
		"regionCode": "09",
		"provinceCode": "048",
		"municipalityCode": "048017",
		"regionName": "Toscana"
	}`
	request := httptest.NewRequest(http.MethodPost, "/municipality/createMunicipality", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var payload struct {
		Violations []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	require.Len(t, payload.Violations, 1)
	assert.Equal(t, "the municipality name is mandatory", payload.Violations[0].Message)

	assert.Zero(t, repo.upsertCalls)
}

/*
TestCreateMunicipality_MalformedJSON verifies a non-JSON body is rejected
with 400 before validation.
*/
func TestCreateMunicipality_MalformedJSON(t *testing.T) {
	router := newTestRouter(&stubRepository{})

	request := httptest.NewRequest(http.MethodPost, "/municipality/createMunicipality", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "violations")
}

/*
TestCreateMunicipality_GatewayFault verifies that a storage fault surfaces
as a 500 with the structured error payload.
*/
func TestCreateMunicipality_GatewayFault(t *testing.T) {
	failure := domerr.ServerError("ERROR: disk full (SQLSTATE 53100)", "municipality.PostgresRepository")
	repo := &stubRepository{
		upsertResult: either.Left[*domerr.Error, *municipality.Municipality](failure),
	}
	router := newTestRouter(repo)

	request := httptest.NewRequest(http.MethodPost, "/municipality/createMunicipality", strings.NewReader(validBody))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, failure.Message, payload["message"])
	assert.Equal(t, "municipality.PostgresRepository", payload["classHappen"])
	assert.Contains(t, payload, "timeStamp")
}

/*
TestGetAllMunicipalities verifies the list endpoint: a non-empty store
yields a JSON array whose elements expose all twelve response fields.
*/
func TestGetAllMunicipalities(t *testing.T) {
	repo := &stubRepository{listResult: []*municipality.Municipality{testEntity()}}
	router := newTestRouter(repo)

	request := httptest.NewRequest(http.MethodGet, "/municipality/getAllMunicipalities", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var elements []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &elements))
	require.GreaterOrEqual(t, len(elements), 1)

	wantFields := []string{
		"regionCode", "provinceCode", "municipalityCode", "municipalitySigle",
		"municipalityName", "regionName", "cadastralCode", "territorialUnitType",
		"capitalsMunicipality", "latitude", "longitude", "altitude",
	}
	for _, field := range wantFields {
		assert.Contains(t, elements[0], field)
	}
}

/*
TestGetAllMunicipalities_Empty verifies an empty store yields an empty
array, not null.
*/
func TestGetAllMunicipalities_Empty(t *testing.T) {
	router := newTestRouter(&stubRepository{})

	request := httptest.NewRequest(http.MethodGet, "/municipality/getAllMunicipalities", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "[]\n", recorder.Body.String())
}

/*
TestGetAllMunicipalities_StorageFault verifies a storage fault surfaces as
a structured 500.
*/
func TestGetAllMunicipalities_StorageFault(t *testing.T) {
	repo := &stubRepository{listErr: assert.AnError}
	router := newTestRouter(repo)

	request := httptest.NewRequest(http.MethodGet, "/municipality/getAllMunicipalities", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "municipality.Handler", payload["classHappen"])
}
