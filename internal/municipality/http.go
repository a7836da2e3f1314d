// Copyright (c) 2026 Municipio. All rights reserved.

package municipality

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/civita/municipio/internal/platform/domerr"
	requestutil "github.com/civita/municipio/internal/platform/request"
	"github.com/civita/municipio/internal/platform/respond"
	"github.com/civita/municipio/internal/platform/validate"
)

// handlerOrigin tags errors raised at the transport boundary.
const handlerOrigin = "municipality.Handler"

// Handler exposes the municipality routes.
type Handler struct {
	service *Service
}

// NewHandler creates the HTTP handler for the municipality domain.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the /municipality group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/getAllMunicipalities", handler.getAllMunicipalities)
	router.Post("/createMunicipality", handler.createMunicipality)
	return router
}

// getAllMunicipalities handles GET /municipality/getAllMunicipalities.
//
// The store never fails on empty; a storage fault surfaces as a structured
// ServerError payload.
func (handler *Handler) getAllMunicipalities(writer http.ResponseWriter, request *http.Request) {
	municipalities, err := handler.service.GetAll(request.Context())
	if err != nil {
		respond.DomainError(writer, request, domerr.ServerError(err.Error(), handlerOrigin))
		return
	}

	respond.JSON(writer, http.StatusOK, municipalities)
}

// createMunicipality handles POST /municipality/createMunicipality.
//
// Validation is rejected here, at the transport boundary, before the
// service is ever invoked.
func (handler *Handler) createMunicipality(writer http.ResponseWriter, request *http.Request) {
	var body RequestDto
	if violations := requestutil.DecodeJSON(request, &body); violations != nil {
		respond.Violations(writer, violations)
		return
	}

	if violations := validateRequest(body); violations != nil {
		respond.Violations(writer, violations)
		return
	}

	outcome := handler.service.Create(request.Context(), body)
	respond.Result(writer, request, outcome, http.StatusCreated)
}

// validateRequest enforces the required-field rules of the create endpoint.
func validateRequest(body RequestDto) *validate.ViolationError {
	validator := &validate.Validator{}
	return validator.
		Required("regionCode", body.RegionCode, "the region code is mandatory").
		Required("provinceCode", body.ProvinceCode, "the province code is mandatory").
		Required("municipalityCode", body.MunicipalityCode, "the municipality code is mandatory").
		Required("municipalityName", body.MunicipalityName, "the municipality name is mandatory").
		Required("regionName", body.RegionName, "the region name is mandatory").
		Err()
}
