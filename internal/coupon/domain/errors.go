package domain

import (
	"github.com/allisson/coupons/internal/errors"
)

var (
	// ErrInvalidConfiguration indicates a code format with out-of-range or malformed fields.
	ErrInvalidConfiguration = errors.Wrap(errors.ErrInvalidInput, "invalid code format configuration")

	// ErrInvalidSymbol indicates a character outside the code alphabet where a symbol was required.
	ErrInvalidSymbol = errors.Wrap(errors.ErrInvalidInput, "character is not a code alphabet symbol")

	// ErrInvalidPartIndex indicates a checkdigit was requested for a part index below one.
	ErrInvalidPartIndex = errors.Wrap(errors.ErrInvalidInput, "part index must be one or greater")

	// ErrOutOfEntropy indicates the symbol stream was exhausted before a full code was assembled.
	ErrOutOfEntropy = errors.Wrap(errors.ErrInvalidInput, "not enough entropy to generate a code with this format")

	// ErrSecureRandomUnavailable indicates the operating system random source could not be read.
	ErrSecureRandomUnavailable = errors.Wrap(errors.ErrUnavailable, "secure random source unavailable")

	// ErrFormatProfileNotFound indicates the format profile was not found.
	ErrFormatProfileNotFound = errors.Wrap(errors.ErrNotFound, "format profile not found")

	// ErrFormatProfileAlreadyExists indicates a format profile with the same name already exists.
	ErrFormatProfileAlreadyExists = errors.Wrap(errors.ErrConflict, "format profile already exists")
)
