package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	couponUsecase "github.com/allisson/coupons/internal/coupon/usecase"
)

// RunPreview renders the placeholder pattern for an explicit code shape
// without generating any code.
func RunPreview(
	ctx context.Context,
	couponUseCase couponUsecase.CouponUseCase,
	logger *slog.Logger,
	writer io.Writer,
	prefix, separator string,
	parts, partLength int,
	format string,
) error {
	logger.Info("previewing format",
		slog.String("prefix", prefix),
		slog.String("separator", separator),
		slog.Int("parts", parts),
		slog.Int("part_length", partLength),
	)

	// Render the pattern
	pattern, err := couponUseCase.Preview(ctx, prefix, separator, parts, partLength)
	if err != nil {
		return fmt.Errorf("failed to preview format: %w", err)
	}

	// Output result based on format
	if format == "json" {
		if err := outputPreviewJSON(writer, pattern); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		_, _ = fmt.Fprintln(writer, pattern)
	}

	return nil
}

// outputPreviewJSON outputs the pattern in JSON format for machine consumption.
func outputPreviewJSON(writer io.Writer, pattern string) error {
	result := map[string]interface{}{
		"pattern": pattern,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
