// Copyright (c) 2026 Municipio. All rights reserved.

package municipality

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/civita/municipio/internal/platform/database/schema"
	"github.com/civita/municipio/internal/platform/domerr"
	"github.com/civita/municipio/internal/platform/either"
	"github.com/civita/municipio/pkg/uuidv7"
)

// repositoryOrigin tags every error raised by this gateway.
const repositoryOrigin = "municipality.PostgresRepository"

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the Postgres implementation of the gateway.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// processResponse normalizes a storage outcome into the domain taxonomy.
//
// It is the single point where storage-layer failures become typed domain
// errors: a fault becomes a ServerError carrying the fault description, an
// absent row becomes a NotFound, a present row becomes a success.
func processResponse(persisted *Municipality, err error) either.Either[*domerr.Error, *Municipality] {
	if err != nil {
		return either.Left[*domerr.Error, *Municipality](domerr.ServerError(err.Error(), repositoryOrigin))
	}
	if persisted == nil {
		return either.Left[*domerr.Error, *Municipality](domerr.NotFound(repositoryOrigin))
	}
	return either.Right[*domerr.Error](persisted)
}

// ListAll reads every stored municipality. Ordering is not guaranteed.
func (repository *PostgresRepository) ListAll(context context.Context) ([]*Municipality, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s;
	`,
		schema.Municipality.ID,
		schema.Municipality.RegionCode,
		schema.Municipality.ProvinceCode,
		schema.Municipality.MunicipalityCode,
		schema.Municipality.MunicipalitySigle,
		schema.Municipality.MunicipalityName,
		schema.Municipality.RegionName,
		schema.Municipality.CadastralCode,
		schema.Municipality.TerritorialUnitType,
		schema.Municipality.CapitalsMunicipality,
		schema.Municipality.Latitude,
		schema.Municipality.Longitude,
		schema.Municipality.Altitude,
		schema.Municipality.Table,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("municipality: list all: %w", err)
	}
	defer rows.Close()

	var municipalities []*Municipality
	for rows.Next() {
		entity := &Municipality{}
		if err := rows.Scan(
			&entity.ID,
			&entity.RegionCode,
			&entity.ProvinceCode,
			&entity.MunicipalityCode,
			&entity.MunicipalitySigle,
			&entity.MunicipalityName,
			&entity.RegionName,
			&entity.CadastralCode,
			&entity.TerritorialUnitType,
			&entity.CapitalsMunicipality,
			&entity.Latitude,
			&entity.Longitude,
			&entity.Altitude,
		); err != nil {
			return nil, fmt.Errorf("municipality: scan row: %w", err)
		}
		municipalities = append(municipalities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("municipality: read rows: %w", err)
	}

	return municipalities, nil
}

// Upsert persists a new or existing record inside one transaction.
//
// The storage engine decides insert vs. update by identity; a record without
// an identifier gets a freshly generated UUIDv7 before the write.
func (repository *PostgresRepository) Upsert(context context.Context, entity *Municipality) either.Either[*domerr.Error, *Municipality] {
	record := *entity
	if record.ID == "" {
		record.ID = uuidv7.New()
	}

	tx, err := repository.pool.Begin(context)
	if err != nil {
		return processResponse(nil, err)
	}
	// Rollback after a successful commit is a no-op error and is ignored.
	defer func() { _ = tx.Rollback(context) }()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
		RETURNING %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s;
	`,
		schema.Municipality.Table,
		schema.Municipality.ID,
		schema.Municipality.RegionCode,
		schema.Municipality.ProvinceCode,
		schema.Municipality.MunicipalityCode,
		schema.Municipality.MunicipalitySigle,
		schema.Municipality.MunicipalityName,
		schema.Municipality.RegionName,
		schema.Municipality.CadastralCode,
		schema.Municipality.TerritorialUnitType,
		schema.Municipality.CapitalsMunicipality,
		schema.Municipality.Latitude,
		schema.Municipality.Longitude,
		schema.Municipality.Altitude,
		schema.Municipality.ID,
		schema.Municipality.RegionCode, schema.Municipality.RegionCode,
		schema.Municipality.ProvinceCode, schema.Municipality.ProvinceCode,
		schema.Municipality.MunicipalityCode, schema.Municipality.MunicipalityCode,
		schema.Municipality.MunicipalitySigle, schema.Municipality.MunicipalitySigle,
		schema.Municipality.MunicipalityName, schema.Municipality.MunicipalityName,
		schema.Municipality.RegionName, schema.Municipality.RegionName,
		schema.Municipality.CadastralCode, schema.Municipality.CadastralCode,
		schema.Municipality.TerritorialUnitType, schema.Municipality.TerritorialUnitType,
		schema.Municipality.CapitalsMunicipality, schema.Municipality.CapitalsMunicipality,
		schema.Municipality.Latitude, schema.Municipality.Latitude,
		schema.Municipality.Longitude, schema.Municipality.Longitude,
		schema.Municipality.Altitude, schema.Municipality.Altitude,
		schema.Municipality.ID,
		schema.Municipality.RegionCode,
		schema.Municipality.ProvinceCode,
		schema.Municipality.MunicipalityCode,
		schema.Municipality.MunicipalitySigle,
		schema.Municipality.MunicipalityName,
		schema.Municipality.RegionName,
		schema.Municipality.CadastralCode,
		schema.Municipality.TerritorialUnitType,
		schema.Municipality.CapitalsMunicipality,
		schema.Municipality.Latitude,
		schema.Municipality.Longitude,
		schema.Municipality.Altitude,
	)

	persisted := &Municipality{}
	err = tx.QueryRow(context, query,
		record.ID,
		record.RegionCode,
		record.ProvinceCode,
		record.MunicipalityCode,
		record.MunicipalitySigle,
		record.MunicipalityName,
		record.RegionName,
		record.CadastralCode,
		record.TerritorialUnitType,
		record.CapitalsMunicipality,
		record.Latitude,
		record.Longitude,
		record.Altitude,
	).Scan(
		&persisted.ID,
		&persisted.RegionCode,
		&persisted.ProvinceCode,
		&persisted.MunicipalityCode,
		&persisted.MunicipalitySigle,
		&persisted.MunicipalityName,
		&persisted.RegionName,
		&persisted.CadastralCode,
		&persisted.TerritorialUnitType,
		&persisted.CapitalsMunicipality,
		&persisted.Latitude,
		&persisted.Longitude,
		&persisted.Altitude,
	)
	if err != nil {
		return processResponse(nil, err)
	}

	if err := tx.Commit(context); err != nil {
		return processResponse(nil, err)
	}

	return processResponse(persisted, nil)
}
