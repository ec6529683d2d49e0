package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	couponUsecaseMocks "github.com/allisson/coupons/internal/coupon/usecase/mocks"
	databaseMocks "github.com/allisson/coupons/internal/database/mocks"
	apperrors "github.com/allisson/coupons/internal/errors"
)

// TestFormatProfileUseCase_Create tests the Create method of formatProfileUseCase.
func TestFormatProfileUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}

		mockRepo.On("GetByName", mock.Anything, "spring-sale").
			Return(nil, couponDomain.ErrFormatProfileNotFound).
			Once()
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(profile *couponDomain.FormatProfile) bool {
			return profile.Name == "spring-sale" &&
				profile.Prefix == "SAVE" &&
				profile.Separator == "-" &&
				profile.Parts == 2 &&
				profile.PartLength == 4
		})).Return(nil).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		profile, err := uc.Create(ctx, "spring-sale", "save", "-", 2, 4)

		assert.NoError(t, err)
		require.NotNil(t, profile)
		assert.NotEqual(t, uuid.Nil, profile.ID)
		assert.Equal(t, "spring-sale", profile.Name)
		assert.Equal(t, "SAVE", profile.Prefix)
		assert.False(t, profile.CreatedAt.IsZero())
		assert.Equal(t, profile.CreatedAt, profile.UpdatedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_EmptyName", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		profile, err := uc.Create(ctx, "", "SAVE", "-", 2, 4)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Nil(t, profile)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_InvalidFormat", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		profile, err := uc.Create(ctx, "spring-sale", "SAVE", "-", 0, 4)

		assert.ErrorIs(t, err, couponDomain.ErrInvalidConfiguration)
		assert.Nil(t, profile)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}
		existing := newProfile("spring-sale", "SAVE", "-", 2, 4)

		mockRepo.On("GetByName", mock.Anything, "spring-sale").Return(existing, nil).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		profile, err := uc.Create(ctx, "spring-sale", "SAVE", "-", 2, 4)

		assert.ErrorIs(t, err, couponDomain.ErrFormatProfileAlreadyExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Nil(t, profile)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_LookupFails", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}

		mockRepo.On("GetByName", mock.Anything, "spring-sale").Return(nil, assert.AnError).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		profile, err := uc.Create(ctx, "spring-sale", "SAVE", "-", 2, 4)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, profile)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_CreateFails", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}

		mockRepo.On("GetByName", mock.Anything, "spring-sale").
			Return(nil, couponDomain.ErrFormatProfileNotFound).
			Once()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		profile, err := uc.Create(ctx, "spring-sale", "SAVE", "-", 2, 4)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, profile)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_TransactionFails", func(t *testing.T) {
		txManager := &databaseMocks.MockTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}

		txManager.On("WithTx", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		profile, err := uc.Create(ctx, "spring-sale", "SAVE", "-", 2, 4)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, profile)
		txManager.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})
}

// TestFormatProfileUseCase_GetByName tests the GetByName method of formatProfileUseCase.
func TestFormatProfileUseCase_GetByName(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}
		profile := newProfile("spring-sale", "SAVE", "-", 2, 4)

		mockRepo.On("GetByName", ctx, "spring-sale").Return(profile, nil).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		result, err := uc.GetByName(ctx, "spring-sale")

		assert.NoError(t, err)
		assert.Equal(t, profile, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}

		mockRepo.On("GetByName", ctx, "missing").Return(nil, couponDomain.ErrFormatProfileNotFound).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		result, err := uc.GetByName(ctx, "missing")

		assert.ErrorIs(t, err, couponDomain.ErrFormatProfileNotFound)
		assert.Nil(t, result)
		mockRepo.AssertExpectations(t)
	})
}

// TestFormatProfileUseCase_List tests the List method of formatProfileUseCase.
func TestFormatProfileUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}
		profiles := []*couponDomain.FormatProfile{
			newProfile("autumn-sale", "FALL", "-", 2, 4),
			newProfile("spring-sale", "SAVE", "-", 2, 4),
		}

		mockRepo.On("List", ctx, 0, 10).Return(profiles, nil).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		result, err := uc.List(ctx, 0, 10)

		assert.NoError(t, err)
		assert.Equal(t, profiles, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_RepositoryFails", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}

		mockRepo.On("List", ctx, 0, 10).Return(nil, assert.AnError).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		result, err := uc.List(ctx, 0, 10)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, result)
		mockRepo.AssertExpectations(t)
	})
}

// TestFormatProfileUseCase_Delete tests the Delete method of formatProfileUseCase.
func TestFormatProfileUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}
		profile := newProfile("spring-sale", "SAVE", "-", 2, 4)

		mockRepo.On("GetByName", ctx, "spring-sale").Return(profile, nil).Once()
		mockRepo.On("Delete", ctx, profile.ID).Return(nil).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		err := uc.Delete(ctx, "spring-sale")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}

		mockRepo.On("GetByName", ctx, "missing").Return(nil, couponDomain.ErrFormatProfileNotFound).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		err := uc.Delete(ctx, "missing")

		assert.ErrorIs(t, err, couponDomain.ErrFormatProfileNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_DeleteFails", func(t *testing.T) {
		txManager := &databaseMocks.PassthroughTxManager{}
		mockRepo := &couponUsecaseMocks.MockFormatProfileRepository{}
		profile := newProfile("spring-sale", "SAVE", "-", 2, 4)

		mockRepo.On("GetByName", ctx, "spring-sale").Return(profile, nil).Once()
		mockRepo.On("Delete", ctx, profile.ID).Return(assert.AnError).Once()

		uc := NewFormatProfileUseCase(txManager, mockRepo)
		err := uc.Delete(ctx, "spring-sale")

		assert.ErrorIs(t, err, assert.AnError)
		mockRepo.AssertExpectations(t)
	})
}
