package commands

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/coupons/internal/coupon/export"
	couponUsecase "github.com/allisson/coupons/internal/coupon/usecase"
)

// RunGenerate generates coupon codes and writes them to the output in the
// requested format. A non-empty seed hex string produces the deterministic
// code for that seed and is only valid with count == 1.
func RunGenerate(
	ctx context.Context,
	couponUseCase couponUsecase.CouponUseCase,
	logger *slog.Logger,
	writer io.Writer,
	profileName string,
	count int,
	seedHex string,
	format string,
	outputPath string,
) error {
	// Decode the optional seed
	var seed []byte
	if seedHex != "" {
		decoded, err := hex.DecodeString(seedHex)
		if err != nil {
			return fmt.Errorf("invalid seed: %w", err)
		}
		seed = decoded
	}

	// Redirect output to a file when requested
	out := writer
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				logger.Error("failed to close output file",
					slog.String("path", outputPath),
					slog.String("error", err.Error()),
				)
			}
		}()
		out = file
	}

	logger.Info("generating codes",
		slog.String("profile", profileName),
		slog.Int("count", count),
		slog.Bool("seeded", seed != nil),
		slog.String("format", format),
	)

	// CSV export streams straight from the use case
	if format == "csv" {
		if seed != nil {
			return fmt.Errorf("seeded generation supports text or json output only")
		}
		if err := couponUseCase.ExportCSV(ctx, profileName, count, export.Header{}, out); err != nil {
			return fmt.Errorf("failed to export codes: %w", err)
		}
		logger.Info("generation completed", slog.Int("count", count))
		return nil
	}

	// Execute generation
	codes, err := couponUseCase.Generate(ctx, profileName, count, seed)
	if err != nil {
		return fmt.Errorf("failed to generate codes: %w", err)
	}

	// Output result based on format
	if format == "json" {
		if err := outputGenerateJSON(out, codes); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputGenerateText(out, codes)
	}

	logger.Info("generation completed", slog.Int("count", len(codes)))

	return nil
}

// outputGenerateText writes one code per line.
func outputGenerateText(writer io.Writer, codes []string) {
	for _, code := range codes {
		_, _ = fmt.Fprintln(writer, code)
	}
}

// outputGenerateJSON outputs the generated codes in JSON format for machine consumption.
func outputGenerateJSON(writer io.Writer, codes []string) error {
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
