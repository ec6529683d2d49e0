package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/coupons/cmd/app/commands"
	"github.com/allisson/coupons/internal/app"
	"github.com/allisson/coupons/internal/config"
)

func getCouponCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate coupon codes",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "profile",
					Aliases: []string{"p"},
					Value:   "",
					Usage:   "Format profile name (omit to use the configured default format)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "Number of codes to generate",
				},
				&cli.StringFlag{
					Name:    "seed",
					Aliases: []string{"s"},
					Value:   "",
					Usage:   "Hex-encoded seed for deterministic generation (requires count=1)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text', 'json' or 'csv'",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "",
					Usage:   "Write output to this file instead of stdout",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				couponUseCase, err := container.CouponUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerate(
					ctx,
					couponUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("profile"),
					int(cmd.Int("count")),
					cmd.String("seed"),
					cmd.String("format"),
					cmd.String("output"),
				)
			},
		},
		{
			Name:      "validate",
			Usage:     "Validate coupon codes",
			ArgsUsage: "CODE [CODE...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "profile",
					Aliases: []string{"p"},
					Value:   "",
					Usage:   "Format profile name (omit to use the configured default format)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				couponUseCase, err := container.CouponUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					couponUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("profile"),
					cmd.Args().Slice(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "normalize",
			Usage:     "Normalize coupon codes to their canonical form",
			ArgsUsage: "CODE [CODE...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "profile",
					Aliases: []string{"p"},
					Value:   "",
					Usage:   "Format profile name (omit to use the configured default format)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				couponUseCase, err := container.CouponUseCase()
				if err != nil {
					return err
				}

				return commands.RunNormalize(
					ctx,
					couponUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("profile"),
					cmd.Args().Slice(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "preview",
			Usage: "Preview the placeholder pattern for a code format",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "prefix",
					Value: "",
					Usage: "Static prefix prepended to generated codes",
				},
				&cli.StringFlag{
					Name:  "separator",
					Value: "",
					Usage: "Separator between code parts",
				},
				&cli.IntFlag{
					Name:  "parts",
					Value: 0,
					Usage: "Number of parts in the code",
				},
				&cli.IntFlag{
					Name:  "part-length",
					Value: 0,
					Usage: "Symbols per part, including the checkdigit",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				// Fall back to the configured default format for unset flags
				prefix := cfg.CodePrefix
				if cmd.IsSet("prefix") {
					prefix = cmd.String("prefix")
				}
				separator := cfg.CodeSeparator
				if cmd.IsSet("separator") {
					separator = cmd.String("separator")
				}
				parts := cfg.CodeParts
				if cmd.IsSet("parts") {
					parts = int(cmd.Int("parts"))
				}
				partLength := cfg.CodePartLength
				if cmd.IsSet("part-length") {
					partLength = int(cmd.Int("part-length"))
				}

				couponUseCase, err := container.CouponUseCase()
				if err != nil {
					return err
				}

				return commands.RunPreview(
					ctx,
					couponUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					prefix,
					separator,
					parts,
					partLength,
					cmd.String("format"),
				)
			},
		},
	}
}
