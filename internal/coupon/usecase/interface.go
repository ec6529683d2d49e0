// Package usecase defines the interfaces and implementations for coupon code use cases.
// Use cases orchestrate the code service, format profile persistence and the export sink.
package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	"github.com/allisson/coupons/internal/coupon/export"
)

// FormatProfileRepository defines the interface for FormatProfile persistence operations.
type FormatProfileRepository interface {
	Create(ctx context.Context, profile *couponDomain.FormatProfile) error
	GetByName(ctx context.Context, name string) (*couponDomain.FormatProfile, error)
	List(ctx context.Context, offset, limit int) ([]*couponDomain.FormatProfile, error)
	Delete(ctx context.Context, profileID uuid.UUID) error
}

// CouponUseCase defines the interface for coupon code business logic.
// An empty profileName selects the configured default code format.
type CouponUseCase interface {
	// Generate produces count codes. A non-empty seed is only valid with
	// count == 1 and yields the deterministic code for that seed.
	Generate(ctx context.Context, profileName string, count int, seed []byte) ([]string, error)

	// Validate reports whether every code in codes validates under the
	// resolved format. An empty collection is valid.
	Validate(ctx context.Context, profileName string, codes []string) (bool, error)

	// Normalize maps every code to its canonical form under the resolved
	// format, preserving order.
	Normalize(ctx context.Context, profileName string, codes []string) ([]string, error)

	// Preview renders the placeholder pattern for an explicit code shape.
	// It never falls back to profile or configured defaults.
	Preview(ctx context.Context, prefix, separator string, parts, partLength int) (string, error)

	// ExportCSV generates count codes and writes them to w as CSV.
	ExportCSV(ctx context.Context, profileName string, count int, header export.Header, w io.Writer) error
}

// FormatProfileUseCase defines the interface for format profile management.
type FormatProfileUseCase interface {
	Create(ctx context.Context, name, prefix, separator string, parts, partLength int) (*couponDomain.FormatProfile, error)
	GetByName(ctx context.Context, name string) (*couponDomain.FormatProfile, error)
	List(ctx context.Context, offset, limit int) ([]*couponDomain.FormatProfile, error)
	Delete(ctx context.Context, name string) error
}
