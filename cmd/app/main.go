// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	// KMS drivers available to --kms-key-uri and KMS_KEY_URI.
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// Build-time version information (injected via ldflags during build).
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:     "app",
		Usage:    "Field-level sealing of JSON values with AES-256-GCM",
		Version:  version,
		Commands: getCommands(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).
			Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
