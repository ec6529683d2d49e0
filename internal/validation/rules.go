// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/coupons/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// SingleChar validates that a string is exactly one character long.
var SingleChar = validation.NewStringRuleWithError(
	func(s string) bool {
		return utf8.RuneCountInString(s) == 1
	},
	validation.NewError("validation_single_char", "must be exactly one character"),
)

// SeparatorChar validates a code separator: one character, not a letter or digit.
// Alphanumeric separators would survive input normalization and corrupt codes.
var SeparatorChar = validation.NewStringRuleWithError(
	func(s string) bool {
		if utf8.RuneCountInString(s) != 1 {
			return false
		}
		r, _ := utf8.DecodeRuneInString(s)
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	},
	validation.NewError("validation_separator_char", "must be a single non-alphanumeric character"),
)
