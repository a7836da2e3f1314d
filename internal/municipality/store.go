// Copyright (c) 2026 Municipio. All rights reserved.

package municipality

import (
	"context"

	"github.com/civita/municipio/internal/platform/domerr"
	"github.com/civita/municipio/internal/platform/either"
)

// Repository defines the data access contract for the municipality gateway.
type Repository interface {
	// ListAll reads every stored record. A genuine storage fault is
	// propagated as a plain error, never swallowed.
	ListAll(context context.Context) ([]*Municipality, error)

	// Upsert persists a new or existing record and yields the persisted
	// entity on success. Storage faults are translated into the domain
	// error taxonomy; no database error crosses this boundary raw.
	Upsert(context context.Context, entity *Municipality) either.Either[*domerr.Error, *Municipality]
}
