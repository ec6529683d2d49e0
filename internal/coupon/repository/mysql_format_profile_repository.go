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

// MySQLFormatProfileRepository implements FormatProfile persistence for MySQL
// databases using BINARY(16) for UUIDs.
type MySQLFormatProfileRepository struct {
	db *sql.DB
}

// NewMySQLFormatProfileRepository creates a new MySQL FormatProfile repository instance.
func NewMySQLFormatProfileRepository(db *sql.DB) *MySQLFormatProfileRepository {
	return &MySQLFormatProfileRepository{db: db}
}

// Create inserts a new format profile into the MySQL database.
func (m *MySQLFormatProfileRepository) Create(ctx context.Context, profile *couponDomain.FormatProfile) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO format_profiles (id, name, prefix, separator, parts, part_length, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := profile.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal format profile id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLFormatProfileRepository) GetByName(
	ctx context.Context,
	name string,
) (*couponDomain.FormatProfile, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, prefix, separator, parts, part_length, created_at, updated_at
			  FROM format_profiles
			  WHERE name = ?
			  LIMIT 1`

	var profile couponDomain.FormatProfile
	var idBytes []byte
	err := querier.QueryRowContext(ctx, query, name).Scan(
		&idBytes,
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

	if err := profile.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal format profile id")
	}

	return &profile, nil
}

// List retrieves format profiles ordered by name with pagination support.
// Returns an empty slice when no profiles exist.
func (m *MySQLFormatProfileRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*couponDomain.FormatProfile, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, prefix, separator, parts, part_length, created_at, updated_at
			  FROM format_profiles
			  ORDER BY name ASC
			  LIMIT ? OFFSET ?`

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
		var idBytes []byte
		err := rows.Scan(
			&idBytes,
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

		if err := profile.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal format profile id")
		}

		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating format profile rows")
	}

	return profiles, nil
}

// Delete removes a format profile by its ID.
func (m *MySQLFormatProfileRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM format_profiles WHERE id = ?`

	id, err := profileID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal format profile id")
	}

	_, err = querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete format profile")
	}

	return nil
}
