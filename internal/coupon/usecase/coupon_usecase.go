package usecase

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	"github.com/allisson/coupons/internal/coupon/export"
	couponService "github.com/allisson/coupons/internal/coupon/service"
	apperrors "github.com/allisson/coupons/internal/errors"
)

// Fallbacks applied when Config fields are left unset.
const (
	defaultBatchMaxSize     = 10000
	defaultBatchConcurrency = 8
)

// Config carries the tunables of the coupon use case.
type Config struct {
	// DefaultFormat applies when a request names no profile.
	DefaultFormat couponDomain.CodeFormat
	// BatchMaxSize caps the count of a single generate or export request.
	BatchMaxSize int
	// BatchConcurrency bounds the workers of a batch generation.
	BatchConcurrency int
}

// couponUseCase implements the CouponUseCase interface.
type couponUseCase struct {
	codeService couponService.CodeService
	profileRepo FormatProfileRepository
	cfg         Config
}

// NewCouponUseCase creates a coupon use case. Zero Config fields fall back to
// the default code format, batch size and concurrency.
func NewCouponUseCase(
	codeService couponService.CodeService,
	profileRepo FormatProfileRepository,
	cfg Config,
) CouponUseCase {
	if cfg.DefaultFormat == (couponDomain.CodeFormat{}) {
		cfg.DefaultFormat = couponDomain.DefaultCodeFormat()
	}
	if cfg.BatchMaxSize < 1 {
		cfg.BatchMaxSize = defaultBatchMaxSize
	}
	if cfg.BatchConcurrency < 1 {
		cfg.BatchConcurrency = defaultBatchConcurrency
	}
	return &couponUseCase{
		codeService: codeService,
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

// resolveFormat returns the code format of the named profile, or the
// configured default when name is empty.
func (c *couponUseCase) resolveFormat(ctx context.Context, profileName string) (couponDomain.CodeFormat, error) {
	if profileName == "" {
		return c.cfg.DefaultFormat, nil
	}
	profile, err := c.profileRepo.GetByName(ctx, profileName)
	if err != nil {
		return couponDomain.CodeFormat{}, err
	}
	return profile.CodeFormat()
}

// Generate produces count codes under the resolved format. Batches run on a
// bounded worker group; output order is stable regardless of scheduling. A
// seed forces the deterministic path and is rejected for batches, since every
// code of the batch would be identical.
func (c *couponUseCase) Generate(
	ctx context.Context,
	profileName string,
	count int,
	seed []byte,
) ([]string, error) {
	if count < 1 {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "count must be at least 1, got %d", count)
	}
	if count > c.cfg.BatchMaxSize {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidInput, "count %d exceeds maximum batch size %d", count, c.cfg.BatchMaxSize)
	}
	if len(seed) > 0 && count != 1 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "seed is only valid when count is 1")
	}

	format, err := c.resolveFormat(ctx, profileName)
	if err != nil {
		return nil, err
	}

	if len(seed) > 0 {
		code, err := c.codeService.GenerateFromSeed(format, seed)
		if err != nil {
			return nil, err
		}
		return []string{code}, nil
	}

	codes := make([]string, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.BatchConcurrency)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			code, err := c.codeService.Generate(format)
			if err != nil {
				return err
			}
			codes[i] = code
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return codes, nil
}

// Validate reports whether every code validates under the resolved format.
func (c *couponUseCase) Validate(ctx context.Context, profileName string, codes []string) (bool, error) {
	format, err := c.resolveFormat(ctx, profileName)
	if err != nil {
		return false, err
	}
	return c.codeService.ValidateAll(format, codes), nil
}

// Normalize maps every code to its canonical form under the resolved format.
func (c *couponUseCase) Normalize(ctx context.Context, profileName string, codes []string) ([]string, error) {
	format, err := c.resolveFormat(ctx, profileName)
	if err != nil {
		return nil, err
	}
	return c.codeService.NormalizeAll(format, codes), nil
}

// Preview renders the placeholder pattern for an explicit shape.
func (c *couponUseCase) Preview(
	_ context.Context,
	prefix, separator string,
	parts, partLength int,
) (string, error) {
	return couponDomain.PreviewPattern(prefix, separator, parts, partLength)
}

// ExportCSV generates count codes and writes them to w as CSV.
func (c *couponUseCase) ExportCSV(
	ctx context.Context,
	profileName string,
	count int,
	header export.Header,
	w io.Writer,
) error {
	codes, err := c.Generate(ctx, profileName, count, nil)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, header, codes)
}
