// Package service provides coupon code generation, validation and canonical
// formatting over a configurable code format.
package service

import (
	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
)

// CodeService defines the coupon code operations. Implementations are
// stateless and safe for concurrent use.
type CodeService interface {
	// Generate produces a fresh code for the format using the OS secure
	// random source. It never falls back to a weaker source.
	Generate(format couponDomain.CodeFormat) (string, error)

	// GenerateFromSeed produces the code deterministically derived from seed.
	// Generate is exactly GenerateFromSeed over a fresh random seed.
	GenerateFromSeed(format couponDomain.CodeFormat, seed []byte) (string, error)

	// Validate reports whether code is a valid code in the format. It is
	// total: any input yields true or false, never an error or panic.
	Validate(format couponDomain.CodeFormat, code string) bool

	// ValidateAll reports whether every code in codes validates.
	// An empty collection is valid.
	ValidateAll(format couponDomain.CodeFormat, codes []string) bool

	// Normalize returns the best-effort canonical rendering of code in the
	// format, without verifying checkdigits.
	Normalize(format couponDomain.CodeFormat, code string) string

	// NormalizeAll maps Normalize over codes, preserving order.
	NormalizeAll(format couponDomain.CodeFormat, codes []string) []string
}
