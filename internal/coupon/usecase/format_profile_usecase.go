package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	"github.com/allisson/coupons/internal/database"
	apperrors "github.com/allisson/coupons/internal/errors"
)

// formatProfileUseCase implements the FormatProfileUseCase interface.
type formatProfileUseCase struct {
	txManager   database.TxManager
	profileRepo FormatProfileRepository
}

// NewFormatProfileUseCase creates a format profile use case.
func NewFormatProfileUseCase(txManager database.TxManager, profileRepo FormatProfileRepository) FormatProfileUseCase {
	return &formatProfileUseCase{
		txManager:   txManager,
		profileRepo: profileRepo,
	}
}

// Create validates the shape, checks name uniqueness and inserts the profile,
// the last two inside one transaction.
func (f *formatProfileUseCase) Create(
	ctx context.Context,
	name, prefix, separator string,
	parts, partLength int,
) (*couponDomain.FormatProfile, error) {
	if name == "" {
		// An empty name selects the default format on the read side, so it
		// can never identify a stored profile.
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "profile name is required")
	}

	format, err := couponDomain.NewCodeFormat(prefix, separator, parts, partLength)
	if err != nil {
		return nil, err
	}

	var profile *couponDomain.FormatProfile
	err = f.txManager.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := f.profileRepo.GetByName(txCtx, name)
		if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if existing != nil {
			return couponDomain.ErrFormatProfileAlreadyExists
		}

		now := time.Now().UTC()
		profile = &couponDomain.FormatProfile{
			ID:         uuid.Must(uuid.NewV7()),
			Name:       name,
			Prefix:     format.Prefix,
			Separator:  format.Separator,
			Parts:      format.Parts,
			PartLength: format.PartLength,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return f.profileRepo.Create(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// GetByName retrieves a format profile by name.
func (f *formatProfileUseCase) GetByName(ctx context.Context, name string) (*couponDomain.FormatProfile, error) {
	return f.profileRepo.GetByName(ctx, name)
}

// List retrieves format profiles with pagination.
func (f *formatProfileUseCase) List(ctx context.Context, offset, limit int) ([]*couponDomain.FormatProfile, error) {
	return f.profileRepo.List(ctx, offset, limit)
}

// Delete removes the named format profile.
func (f *formatProfileUseCase) Delete(ctx context.Context, name string) error {
	profile, err := f.profileRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return f.profileRepo.Delete(ctx, profile.ID)
}
