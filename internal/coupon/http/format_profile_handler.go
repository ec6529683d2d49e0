package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	"github.com/allisson/coupons/internal/coupon/http/dto"
	couponUseCase "github.com/allisson/coupons/internal/coupon/usecase"
	"github.com/allisson/coupons/internal/httputil"
	customValidation "github.com/allisson/coupons/internal/validation"
)

// FormatProfileHandler handles HTTP requests for format profile management.
type FormatProfileHandler struct {
	profileUseCase couponUseCase.FormatProfileUseCase
	logger         *slog.Logger
}

// NewFormatProfileHandler creates a new format profile handler with required dependencies.
func NewFormatProfileHandler(useCase couponUseCase.FormatProfileUseCase, logger *slog.Logger) *FormatProfileHandler {
	return &FormatProfileHandler{
		profileUseCase: useCase,
		logger:         logger,
	}
}

// CreateHandler creates a new format profile.
// POST /v1/format-profiles
// Returns 201 Created with the stored profile. Omitted shape fields fall back
// to the default code format.
func (h *FormatProfileHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateFormatProfileRequest

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

	separator := req.Separator
	if separator == "" {
		separator = couponDomain.DefaultSeparator
	}
	parts := req.Parts
	if parts == 0 {
		parts = couponDomain.DefaultParts
	}
	partLength := req.PartLength
	if partLength == 0 {
		partLength = couponDomain.DefaultPartLength
	}

	profile, err := h.profileUseCase.Create(
		c.Request.Context(),
		req.Name,
		req.Prefix,
		separator,
		parts,
		partLength,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapFormatProfileToResponse(profile))
}

// GetHandler retrieves a format profile by name.
// GET /v1/format-profiles/:profile_name
// Returns 200 OK with the profile.
func (h *FormatProfileHandler) GetHandler(c *gin.Context) {
	name := c.Param("profile_name")
	if name == "" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("profile name cannot be empty"),
			h.logger,
		)
		return
	}

	profile, err := h.profileUseCase.GetByName(c.Request.Context(), name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFormatProfileToResponse(profile))
}

// ListHandler retrieves format profiles with pagination support.
// GET /v1/format-profiles?offset=0&limit=50
// Returns 200 OK with the paginated profile list.
func (h *FormatProfileHandler) ListHandler(c *gin.Context) {
	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	profiles, err := h.profileUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFormatProfilesToListResponse(profiles))
}

// DeleteHandler removes a format profile by name.
// DELETE /v1/format-profiles/:profile_name
// Returns 204 No Content.
func (h *FormatProfileHandler) DeleteHandler(c *gin.Context) {
	name := c.Param("profile_name")
	if name == "" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("profile name cannot be empty"),
			h.logger,
		)
		return
	}

	if err := h.profileUseCase.Delete(c.Request.Context(), name); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return 204 No Content with empty body
	c.Data(http.StatusNoContent, "application/json", nil)
}
