package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/ports"
)

const (
	organisationsTable = "organisation_sites"
	parametersTable    = "app_parameters"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// DBTX is satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// PostgresOrganisations reads organisation sites from Postgres.
type PostgresOrganisations struct {
	db DBTX
}

var _ ports.OrganisationStore = (*PostgresOrganisations)(nil)

// NewPostgresOrganisations wires a pgx connection or pool.
func NewPostgresOrganisations(db DBTX) *PostgresOrganisations {
	return &PostgresOrganisations{db: db}
}

// Organisation returns the organisation with code on site, or
// ports.ErrNotFound.
func (r *PostgresOrganisations) Organisation(ctx context.Context, siteID, code string) (domain.Organisation, error) {
	query, args, err := psql.
		Select("site_id", "code", "name", "email", "website").
		From(organisationsTable).
		Where(sq.Eq{"site_id": siteID, "code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.Organisation{}, fmt.Errorf("build organisation query: %w", err)
	}

	var org domain.Organisation
	err = r.db.QueryRow(ctx, query, args...).Scan(&org.SiteID, &org.Code, &org.Name, &org.Email, &org.Website)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Organisation{}, fmt.Errorf("organisation %s/%s: %w", siteID, code, ports.ErrNotFound)
		}
		return domain.Organisation{}, fmt.Errorf("query organisation %s/%s: %w", siteID, code, err)
	}
	return org, nil
}

// SaveOrganisation upserts the organisation site.
func (r *PostgresOrganisations) SaveOrganisation(ctx context.Context, org domain.Organisation) error {
	query, args, err := psql.
		Insert(organisationsTable).
		Columns("site_id", "code", "name", "email", "website").
		Values(org.SiteID, org.Code, org.Name, org.Email, org.Website).
		Suffix(`ON CONFLICT (site_id, code) DO UPDATE
              SET name = EXCLUDED.name,
                  email = EXCLUDED.email,
                  website = EXCLUDED.website,
                  updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build organisation upsert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert organisation %s/%s: %w", org.SiteID, org.Code, err)
	}
	return nil
}

// PostgresParameters reads application parameters from Postgres.
type PostgresParameters struct {
	db DBTX
}

var _ ports.Parameters = (*PostgresParameters)(nil)

func NewPostgresParameters(db DBTX) *PostgresParameters {
	return &PostgresParameters{db: db}
}

// Int returns the parameter as an integer; a missing parameter is not an
// error.
func (r *PostgresParameters) Int(ctx context.Context, key string) (int64, bool, error) {
	query, args, err := psql.
		Select("value").
		From(parametersTable).
		Where(sq.Eq{"name": key}).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("build parameter query: %w", err)
	}

	var raw string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query parameter %s: %w", key, err)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("parameter %s: %w: %q", key, domain.ErrInvalidValue, raw)
	}
	return n, true, nil
}
