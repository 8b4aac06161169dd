package commands

import (
	"github.com/Criscape/security-crypto-lab/internal/app"
	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SignCommandHandler encapsulates logic for handling digest signatures via CLI.
type SignCommandHandler struct {
	signature cryptoalg.SignatureService
	logger    logger.Logger
}

// NewSignCommandHandler creates a SignCommandHandler
func NewSignCommandHandler(services *app.CryptoServices, logger logger.Logger) *SignCommandHandler {
	return &SignCommandHandler{signature: services.Signature, logger: logger}
}

// SignCmd signs the digest of --message under a fresh keypair
func (h *SignCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	message, _ := cmd.Flags().GetString("message")

	result, err := h.signature.Sign(cmd.Context(), message)
	if err != nil {
		h.logger.Error("signing failed: ", err)
		return err
	}
	return writeJSON(cmd.OutOrStdout(), answerOutput{Answer: result})
}

// ValidateCmd recovers the signed digest and compares it with the digest of --message
func (h *SignCommandHandler) ValidateCmd(cmd *cobra.Command, _ []string) error {
	message, _ := cmd.Flags().GetString("message")
	signature, _ := cmd.Flags().GetString("signature")
	publicKey, _ := cmd.Flags().GetString("public-key")

	result, err := h.signature.Validate(cmd.Context(), message, signature, publicKey)
	if err != nil {
		h.logger.Error("signature validation failed: ", err)
		return err
	}
	return writeJSON(cmd.OutOrStdout(), answerOutput{Answer: result})
}

// Command builds the sign command group
func (h *SignCommandHandler) Command() *cobra.Command {
	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message digest under a freshly generated keypair",
		RunE:  h.SignCmd,
	}
	signCmd.Flags().String("message", "", "Message to sign")
	_ = signCmd.MarkFlagRequired("message")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a signature against a message and PEM public key",
		RunE:  h.ValidateCmd,
	}
	validateCmd.Flags().String("message", "", "Signed message")
	validateCmd.Flags().String("signature", "", "Base64 signature")
	validateCmd.Flags().String("public-key", "", "PEM encoded public key")
	for _, name := range []string{"message", "signature", "public-key"} {
		_ = validateCmd.MarkFlagRequired(name)
	}
	signCmd.AddCommand(validateCmd)

	return signCmd
}
