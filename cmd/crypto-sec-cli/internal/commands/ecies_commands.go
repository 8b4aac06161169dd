package commands

import (
	"encoding/json"
	"fmt"

	"github.com/Criscape/security-crypto-lab/internal/app"
	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ECIESCommandHandler encapsulates logic for handling ECIES operations via CLI.
type ECIESCommandHandler struct {
	ec     cryptoalg.ECCipherService
	logger logger.Logger
}

// NewECIESCommandHandler creates an ECIESCommandHandler
func NewECIESCommandHandler(services *app.CryptoServices, logger logger.Logger) *ECIESCommandHandler {
	return &ECIESCommandHandler{ec: services.EC, logger: logger}
}

// EncryptECIESCmd encrypts --message under a fresh secp256k1 keypair
func (h *ECIESCommandHandler) EncryptECIESCmd(cmd *cobra.Command, _ []string) error {
	message, _ := cmd.Flags().GetString("message")

	result, err := h.ec.Encrypt(cmd.Context(), message)
	if err != nil {
		h.logger.Error("ECIES encryption failed: ", err)
		return err
	}
	return writeJSON(cmd.OutOrStdout(), answerOutput{Answer: result})
}

// DecryptECIESCmd opens the JSON envelope in --encrypt-info with the base64 key in --private-key
func (h *ECIESCommandHandler) DecryptECIESCmd(cmd *cobra.Command, _ []string) error {
	encryptInfo, _ := cmd.Flags().GetString("encrypt-info")
	privateKey, _ := cmd.Flags().GetString("private-key")

	var envelope cryptoalg.EncodedEnvelope
	if err := json.Unmarshal([]byte(encryptInfo), &envelope); err != nil {
		return fmt.Errorf("%w: encrypt-info is not a JSON envelope: %v", apperrors.ErrValidation, err)
	}

	plainText, err := h.ec.Decrypt(cmd.Context(), envelope, privateKey)
	if err != nil {
		h.logger.Error("ECIES decryption failed: ", err)
		return err
	}
	return writeJSON(cmd.OutOrStdout(), answerOutput{Answer: plainText})
}

// Command builds the ecies command group
func (h *ECIESCommandHandler) Command() *cobra.Command {
	eciesCmd := &cobra.Command{
		Use:   "ecies",
		Short: "ECIES over secp256k1 with a fresh keypair per encryption",
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message under a freshly generated keypair",
		RunE:  h.EncryptECIESCmd,
	}
	encryptCmd.Flags().String("message", "", "Message to encrypt")
	_ = encryptCmd.MarkFlagRequired("message")

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt an envelope with a base64 private key",
		RunE:  h.DecryptECIESCmd,
	}
	decryptCmd.Flags().String("encrypt-info", "", `Envelope JSON: {"iv","ephemPublicKey","cipherText","mac"}`)
	decryptCmd.Flags().String("private-key", "", "Base64 private key")
	_ = decryptCmd.MarkFlagRequired("encrypt-info")
	_ = decryptCmd.MarkFlagRequired("private-key")

	eciesCmd.AddCommand(encryptCmd, decryptCmd)
	return eciesCmd
}
