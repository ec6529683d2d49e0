// Package http provides HTTP handlers for coupon code operations.
// Codes are generated from secure entropy, validated per-part by checkdigit
// and normalized from typo-damaged input to canonical form.
package http

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/coupons/internal/coupon/export"
	"github.com/allisson/coupons/internal/coupon/http/dto"
	couponUseCase "github.com/allisson/coupons/internal/coupon/usecase"
	"github.com/allisson/coupons/internal/httputil"
	customValidation "github.com/allisson/coupons/internal/validation"
)

// defaultExportFilename names the CSV attachment when the request omits one.
const defaultExportFilename = "coupons.csv"

// CouponHandler handles HTTP requests for coupon code operations.
type CouponHandler struct {
	couponUseCase couponUseCase.CouponUseCase
	logger        *slog.Logger
}

// NewCouponHandler creates a new coupon handler with required dependencies.
func NewCouponHandler(useCase couponUseCase.CouponUseCase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		couponUseCase: useCase,
		logger:        logger,
	}
}

// GenerateHandler generates one or more coupon codes.
// POST /v1/coupons/generate
// Returns 200 OK with the generated codes. Count defaults to 1; a hex seed
// forces deterministic generation and is only accepted with a count of 1.
func (h *CouponHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateCouponsRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	// Decode the optional hex seed
	var seed []byte
	if req.Seed != "" {
		decoded, err := hex.DecodeString(req.Seed)
		if err != nil {
			httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid seed: %w", err), h.logger)
			return
		}
		seed = decoded
	}

	codes, err := h.couponUseCase.Generate(c.Request.Context(), req.Profile, count, seed)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateCouponsResponse{Codes: codes})
}

// ValidateHandler checks coupon codes against their format.
// POST /v1/coupons/validate
// Returns 200 OK with a verdict covering every submitted code.
func (h *CouponHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateCouponsRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	valid, err := h.couponUseCase.Validate(c.Request.Context(), req.Profile, req.AllCodes())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ValidateCouponsResponse{Valid: valid})
}

// NormalizeHandler maps coupon codes to their canonical form.
// POST /v1/coupons/normalize
// Returns 200 OK; the response shape mirrors the request (single code or
// collection). Normalization does not verify checkdigits.
func (h *CouponHandler) NormalizeHandler(c *gin.Context) {
	var req dto.NormalizeCouponsRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	normalized, err := h.couponUseCase.Normalize(c.Request.Context(), req.Profile, req.AllCodes())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if req.Code != "" {
		c.JSON(http.StatusOK, dto.NormalizeCouponResponse{Code: normalized[0]})
		return
	}
	c.JSON(http.StatusOK, dto.NormalizeCouponsResponse{Codes: normalized})
}

// PreviewHandler renders the placeholder pattern for an explicit code shape.
// POST /v1/coupons/preview
// Returns 200 OK with the pattern.
func (h *CouponHandler) PreviewHandler(c *gin.Context) {
	var req dto.PreviewCouponRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	pattern, err := h.couponUseCase.Preview(
		c.Request.Context(),
		req.Prefix,
		req.Separator,
		req.Parts,
		req.PartLength,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.PreviewCouponResponse{Pattern: pattern})
}

// ExportHandler generates a batch of codes and returns them as a CSV attachment.
// POST /v1/coupons/export
// Returns 200 OK with text/csv content. The batch is buffered before writing
// so generation failures still produce a JSON error response.
func (h *CouponHandler) ExportHandler(c *gin.Context) {
	var req dto.ExportCouponsRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	header := export.Header{Code: req.CodeHeader, Used: req.UsedHeader}

	var buf bytes.Buffer
	if err := h.couponUseCase.ExportCSV(c.Request.Context(), req.Profile, req.Count, header, &buf); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = defaultExportFilename
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
