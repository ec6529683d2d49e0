package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
)

// MockFormatProfileUseCase is a mock implementation of FormatProfileUseCase for testing.
type MockFormatProfileUseCase struct {
	mock.Mock
}

// Create mocks the Create method of FormatProfileUseCase.
func (m *MockFormatProfileUseCase) Create(
	ctx context.Context,
	name, prefix, separator string,
	parts, partLength int,
) (*couponDomain.FormatProfile, error) {
	args := m.Called(ctx, name, prefix, separator, parts, partLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*couponDomain.FormatProfile), args.Error(1)
}

// GetByName mocks the GetByName method of FormatProfileUseCase.
func (m *MockFormatProfileUseCase) GetByName(
	ctx context.Context,
	name string,
) (*couponDomain.FormatProfile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*couponDomain.FormatProfile), args.Error(1)
}

// List mocks the List method of FormatProfileUseCase.
func (m *MockFormatProfileUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*couponDomain.FormatProfile, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*couponDomain.FormatProfile), args.Error(1)
}

// Delete mocks the Delete method of FormatProfileUseCase.
func (m *MockFormatProfileUseCase) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
