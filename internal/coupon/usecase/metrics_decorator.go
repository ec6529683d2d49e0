package usecase

import (
	"context"
	"io"
	"time"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	"github.com/allisson/coupons/internal/coupon/export"
	"github.com/allisson/coupons/internal/metrics"
)

// couponUseCaseWithMetrics decorates CouponUseCase with metrics instrumentation.
type couponUseCaseWithMetrics struct {
	next    CouponUseCase
	metrics metrics.BusinessMetrics
}

// NewCouponUseCaseWithMetrics wraps a CouponUseCase with metrics recording.
func NewCouponUseCaseWithMetrics(useCase CouponUseCase, m metrics.BusinessMetrics) CouponUseCase {
	return &couponUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for code generation operations.
func (c *couponUseCaseWithMetrics) Generate(
	ctx context.Context,
	profileName string,
	count int,
	seed []byte,
) ([]string, error) {
	start := time.Now()
	codes, err := c.next.Generate(ctx, profileName, count, seed)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "coupons", "code_generate", status)
	c.metrics.RecordDuration(ctx, "coupons", "code_generate", time.Since(start), status)

	return codes, err
}

// Validate records metrics for code validation operations.
func (c *couponUseCaseWithMetrics) Validate(
	ctx context.Context,
	profileName string,
	codes []string,
) (bool, error) {
	start := time.Now()
	valid, err := c.next.Validate(ctx, profileName, codes)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "coupons", "code_validate", status)
	c.metrics.RecordDuration(ctx, "coupons", "code_validate", time.Since(start), status)

	return valid, err
}

// Normalize records metrics for code normalization operations.
func (c *couponUseCaseWithMetrics) Normalize(
	ctx context.Context,
	profileName string,
	codes []string,
) ([]string, error) {
	start := time.Now()
	normalized, err := c.next.Normalize(ctx, profileName, codes)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "coupons", "code_normalize", status)
	c.metrics.RecordDuration(ctx, "coupons", "code_normalize", time.Since(start), status)

	return normalized, err
}

// Preview records metrics for pattern preview operations.
func (c *couponUseCaseWithMetrics) Preview(
	ctx context.Context,
	prefix, separator string,
	parts, partLength int,
) (string, error) {
	start := time.Now()
	pattern, err := c.next.Preview(ctx, prefix, separator, parts, partLength)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "coupons", "code_preview", status)
	c.metrics.RecordDuration(ctx, "coupons", "code_preview", time.Since(start), status)

	return pattern, err
}

// ExportCSV records metrics for batch export operations.
func (c *couponUseCaseWithMetrics) ExportCSV(
	ctx context.Context,
	profileName string,
	count int,
	header export.Header,
	w io.Writer,
) error {
	start := time.Now()
	err := c.next.ExportCSV(ctx, profileName, count, header, w)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "coupons", "code_export", status)
	c.metrics.RecordDuration(ctx, "coupons", "code_export", time.Since(start), status)

	return err
}

// formatProfileUseCaseWithMetrics decorates FormatProfileUseCase with metrics instrumentation.
type formatProfileUseCaseWithMetrics struct {
	next    FormatProfileUseCase
	metrics metrics.BusinessMetrics
}

// NewFormatProfileUseCaseWithMetrics wraps a FormatProfileUseCase with metrics recording.
func NewFormatProfileUseCaseWithMetrics(useCase FormatProfileUseCase, m metrics.BusinessMetrics) FormatProfileUseCase {
	return &formatProfileUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for profile creation operations.
func (f *formatProfileUseCaseWithMetrics) Create(
	ctx context.Context,
	name, prefix, separator string,
	parts, partLength int,
) (*couponDomain.FormatProfile, error) {
	start := time.Now()
	profile, err := f.next.Create(ctx, name, prefix, separator, parts, partLength)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "coupons", "profile_create", status)
	f.metrics.RecordDuration(ctx, "coupons", "profile_create", time.Since(start), status)

	return profile, err
}

// GetByName records metrics for profile retrieval operations.
func (f *formatProfileUseCaseWithMetrics) GetByName(
	ctx context.Context,
	name string,
) (*couponDomain.FormatProfile, error) {
	start := time.Now()
	profile, err := f.next.GetByName(ctx, name)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "coupons", "profile_get", status)
	f.metrics.RecordDuration(ctx, "coupons", "profile_get", time.Since(start), status)

	return profile, err
}

// List records metrics for profile listing operations.
func (f *formatProfileUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*couponDomain.FormatProfile, error) {
	start := time.Now()
	profiles, err := f.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "coupons", "profile_list", status)
	f.metrics.RecordDuration(ctx, "coupons", "profile_list", time.Since(start), status)

	return profiles, err
}

// Delete records metrics for profile deletion operations.
func (f *formatProfileUseCaseWithMetrics) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := f.next.Delete(ctx, name)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "coupons", "profile_delete", status)
	f.metrics.RecordDuration(ctx, "coupons", "profile_delete", time.Since(start), status)

	return err
}
