package commands

import (
	"github.com/Criscape/security-crypto-lab/internal/app"
	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/spf13/cobra"
)

type answerOutput struct {
	Answer interface{} `json:"answer"`
}

// AESCommandHandler encapsulates logic for handling passphrase AES operations via CLI.
type AESCommandHandler struct {
	symmetric cryptoalg.SymmetricCipherService
	logger    logger.Logger
}

// NewAESCommandHandler creates an AESCommandHandler
func NewAESCommandHandler(services *app.CryptoServices, logger logger.Logger) *AESCommandHandler {
	return &AESCommandHandler{symmetric: services.Symmetric, logger: logger}
}

// EncryptAESCmd prints the base64 "Salted__" ciphertext of --message under --key
func (h *AESCommandHandler) EncryptAESCmd(cmd *cobra.Command, _ []string) error {
	message, _ := cmd.Flags().GetString("message")
	key, _ := cmd.Flags().GetString("key")

	cipherText, err := h.symmetric.Encrypt(cmd.Context(), message, key)
	if err != nil {
		h.logger.Error("AES encryption failed: ", err)
		return err
	}
	return writeJSON(cmd.OutOrStdout(), answerOutput{Answer: cipherText})
}

// DecryptAESCmd prints the plaintext, or an empty answer when the passphrase is wrong
func (h *AESCommandHandler) DecryptAESCmd(cmd *cobra.Command, _ []string) error {
	cipherText, _ := cmd.Flags().GetString("cipher-text")
	key, _ := cmd.Flags().GetString("key")

	plainText, err := h.symmetric.Decrypt(cmd.Context(), cipherText, key)
	if err != nil {
		h.logger.Error("AES decryption failed: ", err)
		return err
	}
	return writeJSON(cmd.OutOrStdout(), answerOutput{Answer: plainText})
}

// Command builds the aes command group
func (h *AESCommandHandler) Command() *cobra.Command {
	aesCmd := &cobra.Command{
		Use:   "aes",
		Short: "Passphrase based AES-256-CBC",
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message with a passphrase",
		RunE:  h.EncryptAESCmd,
	}
	encryptCmd.Flags().String("message", "", "Message to encrypt")
	encryptCmd.Flags().String("key", "", "Passphrase")
	_ = encryptCmd.MarkFlagRequired("message")
	_ = encryptCmd.MarkFlagRequired("key")

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a base64 ciphertext with a passphrase",
		RunE:  h.DecryptAESCmd,
	}
	decryptCmd.Flags().String("cipher-text", "", "Base64 ciphertext")
	decryptCmd.Flags().String("key", "", "Passphrase")
	_ = decryptCmd.MarkFlagRequired("cipher-text")
	_ = decryptCmd.MarkFlagRequired("key")

	aesCmd.AddCommand(encryptCmd, decryptCmd)
	return aesCmd
}
