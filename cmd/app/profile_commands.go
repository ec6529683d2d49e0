package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/coupons/cmd/app/commands"
	"github.com/allisson/coupons/internal/app"
	"github.com/allisson/coupons/internal/config"
	couponDomain "github.com/allisson/coupons/internal/coupon/domain"
)

func getProfileCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-profile",
			Usage: "Create a named format profile",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Unique profile name",
				},
				&cli.StringFlag{
					Name:  "prefix",
					Value: "",
					Usage: "Static prefix prepended to generated codes",
				},
				&cli.StringFlag{
					Name:  "separator",
					Value: couponDomain.DefaultSeparator,
					Usage: "Separator between code parts",
				},
				&cli.IntFlag{
					Name:  "parts",
					Value: couponDomain.DefaultParts,
					Usage: "Number of parts in the code",
				},
				&cli.IntFlag{
					Name:  "part-length",
					Value: couponDomain.DefaultPartLength,
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

				formatProfileUseCase, err := container.FormatProfileUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateFormatProfile(
					ctx,
					formatProfileUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("name"),
					cmd.String("prefix"),
					cmd.String("separator"),
					int(cmd.Int("parts")),
					int(cmd.Int("part-length")),
					cmd.String("format"),
				)
			},
		},
	}
}
