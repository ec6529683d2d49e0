// Package repository implements format profile persistence.
// Repositories support both PostgreSQL and MySQL, selected by the configured driver.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	"github.com/allisson/coupons/internal/database"
	apperrors "github.com/allisson/coupons/internal/errors"
)

// PostgreSQLFormatProfileRepository implements FormatProfile persistence for PostgreSQL databases.
type PostgreSQLFormatProfileRepository struct {
	db *sql.DB
}

// NewPostgreSQLFormatProfileRepository creates a new PostgreSQL FormatProfile repository instance.
func NewPostgreSQLFormatProfileRepository(db *sql.DB) *PostgreSQLFormatProfileRepository {
	return &PostgreSQLFormatProfileRepository{db: db}
}

// Create inserts a new format profile into the PostgreSQL database.
func (p *PostgreSQLFormatProfileRepository) Create(ctx context.Context, profile *couponDomain.FormatProfile) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO format_profiles (id, name, prefix, separator, parts, part_length, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.Name,
		profile.Prefix,
		profile.Separator,
		profile.Parts,
		profile.PartLength,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create format profile")
	}
	return nil
}

// GetByName retrieves a format profile by its unique name.
func (p *PostgreSQLFormatProfileRepository) GetByName(
	ctx context.Context,
	name string,
) (*couponDomain.FormatProfile, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, prefix, separator, parts, part_length, created_at, updated_at
			  FROM format_profiles
			  WHERE name = $1
			  LIMIT 1`

	var profile couponDomain.FormatProfile
	err := querier.QueryRowContext(ctx, query, name).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Prefix,
		&profile.Separator,
		&profile.Parts,
		&profile.PartLength,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, couponDomain.ErrFormatProfileNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get format profile by name")
	}

	return &profile, nil
}

// List retrieves format profiles ordered by name with pagination support.
// Returns an empty slice when no profiles exist.
func (p *PostgreSQLFormatProfileRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*couponDomain.FormatProfile, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, prefix, separator, parts, part_length, created_at, updated_at
			  FROM format_profiles
			  ORDER BY name ASC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list format profiles")
	}
	defer func() {
		_ = rows.Close()
	}()

	// Initialize empty slice to avoid returning nil for empty results
	profiles := make([]*couponDomain.FormatProfile, 0)
	for rows.Next() {
		var profile couponDomain.FormatProfile
		err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.Prefix,
			&profile.Separator,
			&profile.Parts,
			&profile.PartLength,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan format profile row")
		}
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating format profile rows")
	}

	return profiles, nil
}

// Delete removes a format profile by its ID.
func (p *PostgreSQLFormatProfileRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM format_profiles WHERE id = $1`

	_, err := querier.ExecContext(ctx, query, profileID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete format profile")
	}

	return nil
}
