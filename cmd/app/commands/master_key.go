package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
	sealingService "github.com/allisson/sealfield/internal/sealing/service"
)

// RunCreateMasterKey generates a random master key of size bytes and writes it
// as an environment assignment. Key material is zeroed from memory after encoding.
//
// When kmsKeyURI is set the key is encrypted with KMS before output and the
// printed MASTER_KEY holds the ciphertext. For local development use
// kmsKeyURI="base64key://<32-byte-base64-key>".
//
// Output format:
//   - MASTER_KEY="<base64-encoded key or kms ciphertext>"
//   - KMS_KEY_URI="<uri>" (KMS mode only)
func RunCreateMasterKey(
	ctx context.Context,
	kmsService sealingService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	size int,
	kmsKeyURI string,
) error {
	if size <= 0 {
		return fmt.Errorf("%w: size must be positive", sealingDomain.ErrInvalidKeyLength)
	}

	masterKey := make([]byte, size)
	defer sealingDomain.Zero(masterKey)

	if _, err := io.ReadFull(rand.Reader, masterKey); err != nil {
		return fmt.Errorf("%w: %v", sealingDomain.ErrRandomnessUnavailable, err)
	}

	if kmsKeyURI == "" {
		logger.Info("master key generated", slog.Int("size", size))
		_, _ = fmt.Fprintln(writer, "# Master Key Configuration")
		_, _ = fmt.Fprintln(writer, "# Copy this environment variable to your .env file or secrets manager")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintf(writer, "MASTER_KEY=\"%s\"\n", sealingDomain.EncodeMasterKey(masterKey))
		return nil
	}

	encodedKey, err := sealingService.WrapMasterKey(ctx, kmsService, masterKey, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to wrap master key: %w", err)
	}

	logger.Info("master key generated and encrypted with KMS", slog.Int("size", size))
	_, _ = fmt.Fprintln(writer, "# Master Key Configuration (KMS Mode)")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(writer, "MASTER_KEY=\"%s\"\n", encodedKey)
	return nil
}
