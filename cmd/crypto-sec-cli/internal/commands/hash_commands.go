package commands

import (
	"github.com/Criscape/security-crypto-lab/internal/app"
	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/spf13/cobra"
)

type hashOutput struct {
	Salt string `json:"salt"`
	Hash string `json:"hash"`
}

type hashVerifyOutput struct {
	Valid bool `json:"valid"`
}

// HashCommandHandler hashes and verifies messages without touching a user store.
type HashCommandHandler struct {
	hashProcessor cryptoalg.HashProcessor
	logger        logger.Logger
}

// NewHashCommandHandler creates a HashCommandHandler
func NewHashCommandHandler(services *app.CryptoServices, logger logger.Logger) *HashCommandHandler {
	return &HashCommandHandler{hashProcessor: services.HashProcessor, logger: logger}
}

// HashCmd prints the salt and base64 SHA-512 digest of message||salt
func (h *HashCommandHandler) HashCmd(cmd *cobra.Command, _ []string) error {
	message, _ := cmd.Flags().GetString("message")
	salt, _ := cmd.Flags().GetString("salt")

	salted, err := h.hashProcessor.Hash(message, salt)
	if err != nil {
		h.logger.Error("hashing failed: ", err)
		return err
	}
	return writeJSON(cmd.OutOrStdout(), hashOutput{Salt: salted.Salt, Hash: salted.Digest})
}

// VerifyCmd recomputes the digest and compares it with --hash
func (h *HashCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	message, _ := cmd.Flags().GetString("message")
	salt, _ := cmd.Flags().GetString("salt")
	digest, _ := cmd.Flags().GetString("hash")

	return writeJSON(cmd.OutOrStdout(), hashVerifyOutput{Valid: h.hashProcessor.Verify(message, salt, digest)})
}

// Command builds the hash command group
func (h *HashCommandHandler) Command() *cobra.Command {
	hashCmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash a message with a salt using SHA-512",
		RunE:  h.HashCmd,
	}
	hashCmd.Flags().String("message", "", "Message to hash")
	hashCmd.Flags().String("salt", "", "Salt to append; generated when empty")
	_ = hashCmd.MarkFlagRequired("message")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a message against a salt and hash",
		RunE:  h.VerifyCmd,
	}
	verifyCmd.Flags().String("message", "", "Message to verify")
	verifyCmd.Flags().String("salt", "", "Salt used when hashing")
	verifyCmd.Flags().String("hash", "", "Expected base64 digest")
	for _, name := range []string{"message", "salt", "hash"} {
		_ = verifyCmd.MarkFlagRequired(name)
	}
	hashCmd.AddCommand(verifyCmd)

	return hashCmd
}
