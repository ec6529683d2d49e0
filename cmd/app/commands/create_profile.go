package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
	couponUsecase "github.com/allisson/coupons/internal/coupon/usecase"
)

// RunCreateFormatProfile persists a named format profile that generation,
// validation and normalization can reference later.
func RunCreateFormatProfile(
	ctx context.Context,
	formatProfileUseCase couponUsecase.FormatProfileUseCase,
	logger *slog.Logger,
	writer io.Writer,
	name, prefix, separator string,
	parts, partLength int,
	format string,
) error {
	logger.Info("creating format profile",
		slog.String("name", name),
		slog.String("prefix", prefix),
		slog.String("separator", separator),
		slog.Int("parts", parts),
		slog.Int("part_length", partLength),
	)

	// Execute creation
	profile, err := formatProfileUseCase.Create(ctx, name, prefix, separator, parts, partLength)
	if err != nil {
		return fmt.Errorf("failed to create format profile: %w", err)
	}

	// Output result based on format
	if format == "json" {
		if err := outputFormatProfileJSON(writer, profile); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputFormatProfileText(writer, profile)
	}

	logger.Info("format profile created",
		slog.String("id", profile.ID.String()),
		slog.String("name", profile.Name),
	)

	return nil
}

// outputFormatProfileText outputs the created profile in human-readable text format.
func outputFormatProfileText(writer io.Writer, profile *couponDomain.FormatProfile) {
	_, _ = fmt.Fprintf(writer, "Format Profile Created\n")
	_, _ = fmt.Fprintf(writer, "======================\n\n")
	_, _ = fmt.Fprintf(writer, "ID:          %s\n", profile.ID)
	_, _ = fmt.Fprintf(writer, "Name:        %s\n", profile.Name)
	_, _ = fmt.Fprintf(writer, "Prefix:      %s\n", profile.Prefix)
	_, _ = fmt.Fprintf(writer, "Separator:   %s\n", profile.Separator)
	_, _ = fmt.Fprintf(writer, "Parts:       %d\n", profile.Parts)
	_, _ = fmt.Fprintf(writer, "Part Length: %d\n", profile.PartLength)
}

// outputFormatProfileJSON outputs the created profile in JSON format for machine consumption.
func outputFormatProfileJSON(writer io.Writer, profile *couponDomain.FormatProfile) error {
	result := map[string]interface{}{
		"id":          profile.ID.String(),
		"name":        profile.Name,
		"prefix":      profile.Prefix,
		"separator":   profile.Separator,
		"parts":       profile.Parts,
		"part_length": profile.PartLength,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
