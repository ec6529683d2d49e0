// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/hex"
	"fmt"

	validation "github.com/jellydator/validation"
)

// HexBytes validates that a string is valid hex encoding exactly n bytes.
func HexBytes(n int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_hex_type", "must be a string")
		}
		if s == "" {
			return nil // Let Required handle empty strings
		}
		decoded, err := hex.DecodeString(s)
		if err != nil {
			return validation.NewError("validation_hex", "must be valid hex-encoded data")
		}
		if len(decoded) != n {
			return validation.NewError(
				"validation_hex_length",
				fmt.Sprintf("must encode exactly %d bytes", n),
			)
		}
		return nil
	})
}
