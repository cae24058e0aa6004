package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealfield/cmd/app/commands"
	"github.com/allisson/sealfield/internal/app"
	"github.com/allisson/sealfield/internal/config"
	sealingUseCase "github.com/allisson/sealfield/internal/sealing/usecase"
)

func getSealCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "seal",
			Usage: "Seal a value with MASTER_KEY and print the token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "JSON value to seal, or - to read from stdin",
				},
				&cli.BoolFlag{
					Name:  "raw",
					Value: false,
					Usage: "Seal the value bytes as-is instead of as JSON",
				},
				&cli.BoolFlag{
					Name:  "metrics",
					Value: false,
					Usage: "Print operation metrics in Prometheus text format to stderr",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withSealer(ctx, cmd.Bool("metrics"), func(sealer sealingUseCase.SealerUseCase) error {
					return commands.RunSeal(ctx, sealer, commands.DefaultIO(), cmd.String("value"), cmd.Bool("raw"))
				})
			},
		},
		{
			Name:  "unseal",
			Usage: "Unseal a token with MASTER_KEY and print the value",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Token to unseal, or - to read from stdin",
				},
				&cli.BoolFlag{
					Name:  "raw",
					Value: false,
					Usage: "Print the plaintext bytes instead of JSON",
				},
				&cli.BoolFlag{
					Name:  "metrics",
					Value: false,
					Usage: "Print operation metrics in Prometheus text format to stderr",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withSealer(ctx, cmd.Bool("metrics"), func(sealer sealingUseCase.SealerUseCase) error {
					return commands.RunUnseal(ctx, sealer, commands.DefaultIO(), cmd.String("token"), cmd.Bool("raw"))
				})
			},
		},
	}
}

// withSealer builds a container with the configured master key and runs fn
// with its sealer. When metrics are enabled by printMetrics or METRICS_ENABLED
// they are written to stderr once fn returns.
func withSealer(ctx context.Context, printMetrics bool, fn func(sealingUseCase.SealerUseCase) error) error {
	cfg := config.Load()
	if printMetrics {
		cfg.MetricsEnabled = true
	}
	container := app.NewContainer(cfg)
	defer commands.CloseContainer(container, container.Logger())
	if cfg.MetricsEnabled {
		defer commands.WriteMetrics(container, os.Stderr, container.Logger())
	}

	if err := container.SetupMasterKey(ctx); err != nil {
		return err
	}

	sealer, err := container.SealerUseCase()
	if err != nil {
		return err
	}
	return fn(sealer)
}
