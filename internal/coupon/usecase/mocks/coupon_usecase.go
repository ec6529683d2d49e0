package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/coupons/internal/coupon/export"
)

// MockCouponUseCase is a mock implementation of CouponUseCase for testing.
type MockCouponUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of CouponUseCase.
func (m *MockCouponUseCase) Generate(
	ctx context.Context,
	profileName string,
	count int,
	seed []byte,
) ([]string, error) {
	args := m.Called(ctx, profileName, count, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Validate mocks the Validate method of CouponUseCase.
func (m *MockCouponUseCase) Validate(ctx context.Context, profileName string, codes []string) (bool, error) {
	args := m.Called(ctx, profileName, codes)
	return args.Bool(0), args.Error(1)
}

// Normalize mocks the Normalize method of CouponUseCase.
func (m *MockCouponUseCase) Normalize(ctx context.Context, profileName string, codes []string) ([]string, error) {
	args := m.Called(ctx, profileName, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Preview mocks the Preview method of CouponUseCase.
func (m *MockCouponUseCase) Preview(
	ctx context.Context,
	prefix, separator string,
	parts, partLength int,
) (string, error) {
	args := m.Called(ctx, prefix, separator, parts, partLength)
	return args.String(0), args.Error(1)
}

// ExportCSV mocks the ExportCSV method of CouponUseCase.
func (m *MockCouponUseCase) ExportCSV(
	ctx context.Context,
	profileName string,
	count int,
	header export.Header,
	w io.Writer,
) error {
	args := m.Called(ctx, profileName, count, header, w)
	return args.Error(0)
}
