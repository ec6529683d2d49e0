package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	couponUsecase "github.com/allisson/coupons/internal/coupon/usecase"
)

// RunValidate checks the given codes against the resolved format and reports
// the overall result. Returns an error when any code fails validation so the
// process exits non-zero.
func RunValidate(
	ctx context.Context,
	couponUseCase couponUsecase.CouponUseCase,
	logger *slog.Logger,
	writer io.Writer,
	profileName string,
	codes []string,
	format string,
) error {
	if len(codes) == 0 {
		return fmt.Errorf("at least one code is required")
	}

	logger.Info("validating codes",
		slog.String("profile", profileName),
		slog.Int("count", len(codes)),
	)

	// Execute validation
	valid, err := couponUseCase.Validate(ctx, profileName, codes)
	if err != nil {
		return fmt.Errorf("failed to validate codes: %w", err)
	}

	// Output result based on format
	if format == "json" {
		if err := outputValidateJSON(writer, valid, len(codes)); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputValidateText(writer, valid, len(codes))
	}

	logger.Info("validation completed",
		slog.Bool("valid", valid),
		slog.Int("count", len(codes)),
	)

	// Exit with error code when any code failed
	if !valid {
		return fmt.Errorf("validation failed: one or more codes are invalid")
	}

	return nil
}

// outputValidateText outputs the validation result in human-readable text format.
func outputValidateText(writer io.Writer, valid bool, count int) {
	_, _ = fmt.Fprintf(writer, "Codes Checked: %d\n", count)
	if valid {
		_, _ = fmt.Fprintf(writer, "Status: VALID\n")
	} else {
		_, _ = fmt.Fprintf(writer, "Status: INVALID\n")
	}
}

// outputValidateJSON outputs the validation result in JSON format for machine consumption.
func outputValidateJSON(writer io.Writer, valid bool, count int) error {
	result := map[string]interface{}{
		"valid": valid,
		"count": count,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
