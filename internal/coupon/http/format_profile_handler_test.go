package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	"github.com/allisson/coupons/internal/coupon/http/dto"
	couponUsecaseMocks "github.com/allisson/coupons/internal/coupon/usecase/mocks"
)

// setupTestFormatProfileHandler creates a test handler with mocked dependencies.
func setupTestFormatProfileHandler(t *testing.T) (*FormatProfileHandler, *couponUsecaseMocks.MockFormatProfileUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &couponUsecaseMocks.MockFormatProfileUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewFormatProfileHandler(mockUseCase, logger)

	return handler, mockUseCase
}

// testProfile builds a format profile for handler tests.
func testProfile(name, prefix, separator string, parts, partLength int) *couponDomain.FormatProfile {
	now := time.Now().UTC()
	return &couponDomain.FormatProfile{
		ID:         uuid.Must(uuid.NewV7()),
		Name:       name,
		Prefix:     prefix,
		Separator:  separator,
		Parts:      parts,
		PartLength: partLength,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestFormatProfileHandler_CreateHandler(t *testing.T) {
	t.Run("Success_DefaultShape", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		profile := testProfile("spring-sale", "SAVE", "-", 2, 4)

		// Omitted shape fields fall back to the default code format.
		mockUseCase.On("Create", mock.Anything, "spring-sale", "SAVE", "-", 2, 4).
			Return(profile, nil).
			Once()

		request := dto.CreateFormatProfileRequest{Name: "spring-sale", Prefix: "SAVE"}
		c, w := createTestContext(http.MethodPost, "/v1/format-profiles", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.FormatProfileResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, profile.ID.String(), response.ID)
		assert.Equal(t, "spring-sale", response.Name)
		assert.Equal(t, "SAVE", response.Prefix)
		assert.Equal(t, "-", response.Separator)
		assert.Equal(t, 2, response.Parts)
		assert.Equal(t, 4, response.PartLength)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_ExplicitShape", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		profile := testProfile("bulk-codes", "", ".", 3, 5)

		mockUseCase.On("Create", mock.Anything, "bulk-codes", "", ".", 3, 5).
			Return(profile, nil).
			Once()

		request := dto.CreateFormatProfileRequest{
			Name:       "bulk-codes",
			Separator:  ".",
			Parts:      3,
			PartLength: 5,
		}
		c, w := createTestContext(http.MethodPost, "/v1/format-profiles", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		request := dto.CreateFormatProfileRequest{Prefix: "SAVE"}
		c, w := createTestContext(http.MethodPost, "/v1/format-profiles", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NameWithWhitespace", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		request := dto.CreateFormatProfileRequest{Name: " spring-sale "}
		c, w := createTestContext(http.MethodPost, "/v1/format-profiles", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_AlphanumericSeparator", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		request := dto.CreateFormatProfileRequest{Name: "spring-sale", Separator: "A"}
		c, w := createTestContext(http.MethodPost, "/v1/format-profiles", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		mockUseCase.On("Create", mock.Anything, "spring-sale", "", "-", 2, 4).
			Return(nil, couponDomain.ErrFormatProfileAlreadyExists).
			Once()

		request := dto.CreateFormatProfileRequest{Name: "spring-sale"}
		c, w := createTestContext(http.MethodPost, "/v1/format-profiles", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockUseCase.AssertExpectations(t)
	})
}

func TestFormatProfileHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		profile := testProfile("spring-sale", "SAVE", "-", 2, 4)

		mockUseCase.On("GetByName", mock.Anything, "spring-sale").
			Return(profile, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/format-profiles/spring-sale", nil)
		c.Params = gin.Params{{Key: "profile_name", Value: "spring-sale"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.FormatProfileResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "spring-sale", response.Name)
		assert.Equal(t, "SAVE", response.Prefix)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		mockUseCase.On("GetByName", mock.Anything, "missing").
			Return(nil, couponDomain.ErrFormatProfileNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/format-profiles/missing", nil)
		c.Params = gin.Params{{Key: "profile_name", Value: "missing"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_EmptyName", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/format-profiles/", nil)

		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertExpectations(t)
	})
}

func TestFormatProfileHandler_ListHandler(t *testing.T) {
	t.Run("Success_DefaultPagination", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		profiles := []*couponDomain.FormatProfile{
			testProfile("autumn-sale", "FALL", "-", 2, 4),
			testProfile("spring-sale", "SAVE", "-", 2, 4),
		}

		mockUseCase.On("List", mock.Anything, 0, 50).
			Return(profiles, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/format-profiles", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListFormatProfilesResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response.Data, 2)
		assert.Equal(t, "autumn-sale", response.Data[0].Name)
		assert.Equal(t, "spring-sale", response.Data[1].Name)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_ExplicitPagination", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		mockUseCase.On("List", mock.Anything, 10, 5).
			Return([]*couponDomain.FormatProfile{}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/format-profiles?offset=10&limit=5", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListFormatProfilesResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Empty(t, response.Data)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidLimit", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/format-profiles?limit=0", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_UseCaseFails", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		mockUseCase.On("List", mock.Anything, 0, 50).
			Return(nil, assert.AnError).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/format-profiles", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockUseCase.AssertExpectations(t)
	})
}

func TestFormatProfileHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		mockUseCase.On("Delete", mock.Anything, "spring-sale").
			Return(nil).
			Once()

		c, w := createTestContext(http.MethodDelete, "/v1/format-profiles/spring-sale", nil)
		c.Params = gin.Params{{Key: "profile_name", Value: "spring-sale"}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestFormatProfileHandler(t)

		mockUseCase.On("Delete", mock.Anything, "missing").
			Return(couponDomain.ErrFormatProfileNotFound).
			Once()

		c, w := createTestContext(http.MethodDelete, "/v1/format-profiles/missing", nil)
		c.Params = gin.Params{{Key: "profile_name", Value: "missing"}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockUseCase.AssertExpectations(t)
	})
}
