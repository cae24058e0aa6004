package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealfield/cmd/app/commands"
	"github.com/allisson/sealfield/internal/app"
	"github.com/allisson/sealfield/internal/config"
	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-master-key",
			Usage: "Generate a new master key",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"s"},
					Value:   sealingDomain.DefaultMasterKeySize,
					Usage:   "Master key size in bytes",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "Encrypt the key with this KMS key (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				return commands.RunCreateMasterKey(
					ctx,
					container.KMSService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("size")),
					cmd.String("kms-key-uri"),
				)
			},
		},
	}
}
