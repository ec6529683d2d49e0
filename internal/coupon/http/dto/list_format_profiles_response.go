// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
)

// ListFormatProfilesResponse represents a paginated list of format profiles in API responses.
type ListFormatProfilesResponse struct {
	Data []FormatProfileResponse `json:"data"`
}

// MapFormatProfilesToListResponse converts a slice of domain format profiles to a list response.
func MapFormatProfilesToListResponse(profiles []*couponDomain.FormatProfile) ListFormatProfilesResponse {
	data := make([]FormatProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		data = append(data, MapFormatProfileToResponse(profile))
	}

	return ListFormatProfilesResponse{
		Data: data,
	}
}
