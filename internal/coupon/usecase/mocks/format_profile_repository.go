// Package mocks provides mock implementations for testing use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
)

// MockFormatProfileRepository is a mock implementation of FormatProfileRepository for testing.
type MockFormatProfileRepository struct {
	mock.Mock
}

// Create mocks the Create method of FormatProfileRepository.
func (m *MockFormatProfileRepository) Create(ctx context.Context, profile *couponDomain.FormatProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// GetByName mocks the GetByName method of FormatProfileRepository.
func (m *MockFormatProfileRepository) GetByName(
	ctx context.Context,
	name string,
) (*couponDomain.FormatProfile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*couponDomain.FormatProfile), args.Error(1)
}

// List mocks the List method of FormatProfileRepository.
func (m *MockFormatProfileRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*couponDomain.FormatProfile, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*couponDomain.FormatProfile), args.Error(1)
}

// Delete mocks the Delete method of FormatProfileRepository.
func (m *MockFormatProfileRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}
