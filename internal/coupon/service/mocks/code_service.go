// Package mocks provides mock implementations for testing code service consumers.
package mocks

import (
	"github.com/stretchr/testify/mock"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
)

// MockCodeService is a mock implementation of CodeService for testing.
type MockCodeService struct {
	mock.Mock
}

// Generate mocks the Generate method of CodeService.
func (m *MockCodeService) Generate(format couponDomain.CodeFormat) (string, error) {
	args := m.Called(format)
	return args.String(0), args.Error(1)
}

// GenerateFromSeed mocks the GenerateFromSeed method of CodeService.
func (m *MockCodeService) GenerateFromSeed(format couponDomain.CodeFormat, seed []byte) (string, error) {
	args := m.Called(format, seed)
	return args.String(0), args.Error(1)
}

// Validate mocks the Validate method of CodeService.
func (m *MockCodeService) Validate(format couponDomain.CodeFormat, code string) bool {
	args := m.Called(format, code)
	return args.Bool(0)
}

// ValidateAll mocks the ValidateAll method of CodeService.
func (m *MockCodeService) ValidateAll(format couponDomain.CodeFormat, codes []string) bool {
	args := m.Called(format, codes)
	return args.Bool(0)
}

// Normalize mocks the Normalize method of CodeService.
func (m *MockCodeService) Normalize(format couponDomain.CodeFormat, code string) string {
	args := m.Called(format, code)
	return args.String(0)
}

// NormalizeAll mocks the NormalizeAll method of CodeService.
func (m *MockCodeService) NormalizeAll(format couponDomain.CodeFormat, codes []string) []string {
	args := m.Called(format, codes)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
