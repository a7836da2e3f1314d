// Copyright (c) 2026 Municipio. All rights reserved.

package municipality

import (
	"context"
	"log/slog"

	"github.com/civita/municipio/internal/platform/domerr"
	"github.com/civita/municipio/internal/platform/either"
)

// creationOKMessage is the fixed confirmation for every successful write.
const creationOKMessage = "municipality creation is ok"

// Service orchestrates the gateway and the DTO converters.
//
// It is stateless and safe for concurrent use by independent requests.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs the application service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetAll fetches every stored municipality and converts each to its output
// shape. An empty store yields an empty (non-nil) slice; only a genuine
// storage fault produces an error.
func (service *Service) GetAll(context context.Context) ([]ResponseDto, error) {
	entities, err := service.repo.ListAll(context)
	if err != nil {
		return nil, err
	}

	responses := make([]ResponseDto, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toResponseDto(entity))
	}

	return responses, nil
}

// Create converts the request to an entity, delegates to the gateway, and
// maps a success to the fixed confirmation payload. A failure passes
// through unchanged.
//
// Exactly one persistence attempt happens per call; nothing is retried.
func (service *Service) Create(context context.Context, request RequestDto) either.Either[*domerr.Error, SaveResponseDto] {
	outcome := service.repo.Upsert(context, toEntity(request))

	return either.Map(outcome, func(*Municipality) SaveResponseDto {
		return SaveResponseDto{Message: creationOKMessage}
	})
}
