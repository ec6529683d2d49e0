package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	couponUsecase "github.com/allisson/coupons/internal/coupon/usecase"
)

// RunNormalize maps the given codes to their canonical form and writes them
// to the output in input order.
func RunNormalize(
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

	logger.Info("normalizing codes",
		slog.String("profile", profileName),
		slog.Int("count", len(codes)),
	)

	// Execute normalization
	normalized, err := couponUseCase.Normalize(ctx, profileName, codes)
	if err != nil {
		return fmt.Errorf("failed to normalize codes: %w", err)
	}

	// Output result based on format
	if format == "json" {
		if err := outputNormalizeJSON(writer, normalized); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputNormalizeText(writer, normalized)
	}

	logger.Info("normalization completed", slog.Int("count", len(normalized)))

	return nil
}

// outputNormalizeText writes one canonical code per line.
func outputNormalizeText(writer io.Writer, codes []string) {
	for _, code := range codes {
		_, _ = fmt.Fprintln(writer, code)
	}
}

// outputNormalizeJSON outputs the canonical codes in JSON format for machine consumption.
func outputNormalizeJSON(writer io.Writer, codes []string) error {
	result := map[string]interface{}{
		"codes": codes,
		"count": len(codes),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
