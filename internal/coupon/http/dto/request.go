// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"strings"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/coupons/internal/validation"
)

// SeedBytes is the exact byte length of an explicit generation seed.
const SeedBytes = 8

// filenameSafe validates an export filename: no path separators or control characters.
var filenameSafe = validation.NewStringRuleWithError(
	func(s string) bool {
		if strings.ContainsAny(s, "/\\\x00\r\n") {
			return false
		}
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_filename", "must not contain path separators or control characters"),
)

// GenerateCouponsRequest contains the parameters for generating coupon codes.
// Count defaults to 1. Seed forces deterministic generation and is only valid
// with a count of 1.
type GenerateCouponsRequest struct {
	Profile string `json:"profile"`
	Count   int    `json:"count"`
	Seed    string `json:"seed"` // Hex-encoded, exactly SeedBytes bytes
}

// Validate checks if the generate coupons request is valid.
func (r *GenerateCouponsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Profile,
			customValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&r.Count,
			validation.Min(0),
		),
		validation.Field(&r.Seed,
			customValidation.HexBytes(SeedBytes),
		),
	)
}

// ValidateCouponsRequest contains the parameters for validating coupon codes.
// Exactly one of Code or Codes must be set.
type ValidateCouponsRequest struct {
	Profile string   `json:"profile"`
	Code    string   `json:"code"`
	Codes   []string `json:"codes"`
}

// Validate checks if the validate coupons request is valid.
func (r *ValidateCouponsRequest) Validate() error {
	if err := validateOneOfCodeCodes(r.Code, r.Codes); err != nil {
		return err
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.Profile,
			customValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&r.Codes,
			validation.Length(1, 1000),
		),
	)
}

// AllCodes returns the codes to operate on, regardless of which field was used.
func (r *ValidateCouponsRequest) AllCodes() []string {
	if r.Code != "" {
		return []string{r.Code}
	}
	return r.Codes
}

// NormalizeCouponsRequest contains the parameters for normalizing coupon codes.
// Exactly one of Code or Codes must be set; the response shape mirrors the
// field used.
type NormalizeCouponsRequest struct {
	Profile string   `json:"profile"`
	Code    string   `json:"code"`
	Codes   []string `json:"codes"`
}

// Validate checks if the normalize coupons request is valid.
func (r *NormalizeCouponsRequest) Validate() error {
	if err := validateOneOfCodeCodes(r.Code, r.Codes); err != nil {
		return err
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.Profile,
			customValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&r.Codes,
			validation.Length(1, 1000),
		),
	)
}

// AllCodes returns the codes to operate on, regardless of which field was used.
func (r *NormalizeCouponsRequest) AllCodes() []string {
	if r.Code != "" {
		return []string{r.Code}
	}
	return r.Codes
}

// PreviewCouponRequest contains the explicit code shape to render as a pattern.
type PreviewCouponRequest struct {
	Prefix     string `json:"prefix"`
	Separator  string `json:"separator"`
	Parts      int    `json:"parts"`
	PartLength int    `json:"part_length"`
}

// Validate checks if the preview coupon request is valid.
func (r *PreviewCouponRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Prefix,
			validation.Length(1, 64),
		),
		validation.Field(&r.Separator,
			validation.Required,
			customValidation.SeparatorChar,
		),
		validation.Field(&r.Parts,
			validation.Required,
			validation.Min(1),
		),
		validation.Field(&r.PartLength,
			validation.Required,
			validation.Min(1),
		),
	)
}

// ExportCouponsRequest contains the parameters for exporting a generated batch as CSV.
type ExportCouponsRequest struct {
	Profile    string `json:"profile"`
	Count      int    `json:"count"`
	CodeHeader string `json:"code_header"`
	UsedHeader string `json:"used_header"`
	Filename   string `json:"filename"`
}

// Validate checks if the export coupons request is valid.
func (r *ExportCouponsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Profile,
			customValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&r.Count,
			validation.Required,
			validation.Min(1),
		),
		validation.Field(&r.CodeHeader,
			validation.Length(1, 64),
		),
		validation.Field(&r.UsedHeader,
			validation.Length(1, 64),
		),
		validation.Field(&r.Filename,
			filenameSafe,
			validation.Length(1, 128),
		),
	)
}

// CreateFormatProfileRequest contains the parameters for creating a format profile.
// Omitted shape fields fall back to the default code format.
type CreateFormatProfileRequest struct {
	Name       string `json:"name"`
	Prefix     string `json:"prefix"`
	Separator  string `json:"separator"`
	Parts      int    `json:"parts"`
	PartLength int    `json:"part_length"`
}

// Validate checks if the create format profile request is valid.
func (r *CreateFormatProfileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&r.Prefix,
			validation.Length(1, 64),
		),
		validation.Field(&r.Separator,
			customValidation.SeparatorChar,
		),
		validation.Field(&r.Parts,
			validation.Min(0),
		),
		validation.Field(&r.PartLength,
			validation.Min(0),
		),
	)
}

// validateOneOfCodeCodes enforces that exactly one of code and codes is provided.
func validateOneOfCodeCodes(code string, codes []string) error {
	if code != "" && len(codes) > 0 {
		return validation.Errors{
			"code": validation.NewError("validation_one_of", "code and codes are mutually exclusive"),
		}
	}
	if code == "" && len(codes) == 0 {
		return validation.Errors{
			"code": validation.NewError("validation_one_of", "either code or codes is required"),
		}
	}
	return nil
}
