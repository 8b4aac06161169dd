package commands

import (
	"github.com/Criscape/security-crypto-lab/internal/app"
	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA-OAEP operations via CLI.
type RSACommandHandler struct {
	asymmetric cryptoalg.AsymmetricCipherService
	logger     logger.Logger
}

// NewRSACommandHandler creates an RSACommandHandler
func NewRSACommandHandler(services *app.CryptoServices, logger logger.Logger) *RSACommandHandler {
	return &RSACommandHandler{asymmetric: services.Asymmetric, logger: logger}
}

// EncryptRSACmd encrypts --message under a fresh keypair and prints the ciphertext with the private key
func (h *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	message, _ := cmd.Flags().GetString("message")

	result, err := h.asymmetric.Encrypt(cmd.Context(), message)
	if err != nil {
		h.logger.Error("RSA encryption failed: ", err)
		return err
	}
	return writeJSON(cmd.OutOrStdout(), answerOutput{Answer: result})
}

// DecryptRSACmd decrypts --cipher-text with the PEM private key in --private-key
func (h *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	cipherText, _ := cmd.Flags().GetString("cipher-text")
	privateKey, _ := cmd.Flags().GetString("private-key")

	plainText, err := h.asymmetric.Decrypt(cmd.Context(), cipherText, privateKey)
	if err != nil {
		h.logger.Error("RSA decryption failed: ", err)
		return err
	}
	return writeJSON(cmd.OutOrStdout(), answerOutput{Answer: plainText})
}

// Command builds the rsa command group
func (h *RSACommandHandler) Command() *cobra.Command {
	rsaCmd := &cobra.Command{
		Use:   "rsa",
		Short: "RSA-OAEP with a fresh keypair per encryption",
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message under a freshly generated keypair",
		RunE:  h.EncryptRSACmd,
	}
	encryptCmd.Flags().String("message", "", "Message to encrypt")
	_ = encryptCmd.MarkFlagRequired("message")

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext with a PEM private key",
		RunE:  h.DecryptRSACmd,
	}
	decryptCmd.Flags().String("cipher-text", "", "Base64 ciphertext")
	decryptCmd.Flags().String("private-key", "", "PEM encoded private key")
	_ = decryptCmd.MarkFlagRequired("cipher-text")
	_ = decryptCmd.MarkFlagRequired("private-key")

	rsaCmd.AddCommand(encryptCmd, decryptCmd)
	return rsaCmd
}
