// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
)

// GenerateCouponsResponse carries the generated codes.
type GenerateCouponsResponse struct {
	Codes []string `json:"codes"`
}

// ValidateCouponsResponse carries the validation verdict for the submitted codes.
type ValidateCouponsResponse struct {
	Valid bool `json:"valid"`
}

// NormalizeCouponResponse carries the canonical form of a single code.
type NormalizeCouponResponse struct {
	Code string `json:"code"`
}

// NormalizeCouponsResponse carries the canonical forms of a code collection.
type NormalizeCouponsResponse struct {
	Codes []string `json:"codes"`
}

// PreviewCouponResponse carries the placeholder pattern for a code shape.
type PreviewCouponResponse struct {
	Pattern string `json:"pattern"`
}

// FormatProfileResponse represents a format profile in API responses.
type FormatProfileResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Prefix     string    `json:"prefix"`
	Separator  string    `json:"separator"`
	Parts      int       `json:"parts"`
	PartLength int       `json:"part_length"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MapFormatProfileToResponse converts a domain format profile to an API response.
func MapFormatProfileToResponse(profile *couponDomain.FormatProfile) FormatProfileResponse {
	return FormatProfileResponse{
		ID:         profile.ID.String(),
		Name:       profile.Name,
		Prefix:     profile.Prefix,
		Separator:  profile.Separator,
		Parts:      profile.Parts,
		PartLength: profile.PartLength,
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}
}
