package v1

import (
	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for the symmetric, RSA and ECIES endpoints
type CipherHandler interface {
	EncryptAES(ctx *gin.Context)
	DecryptAES(ctx *gin.Context)
	EncryptRSA(ctx *gin.Context)
	DecryptRSA(ctx *gin.Context)
	EncryptECIES(ctx *gin.Context)
	DecryptECIES(ctx *gin.Context)
}

type cipherHandler struct {
	symmetricService  cryptoalg.SymmetricCipherService
	asymmetricService cryptoalg.AsymmetricCipherService
	ecService         cryptoalg.ECCipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(
	symmetricService cryptoalg.SymmetricCipherService,
	asymmetricService cryptoalg.AsymmetricCipherService,
	ecService cryptoalg.ECCipherService,
) CipherHandler {
	return &cipherHandler{
		symmetricService:  symmetricService,
		asymmetricService: asymmetricService,
		ecService:         ecService,
	}
}

// EncryptAES handles the POST request encrypting a message under a passphrase
// @Summary Encrypt with a passphrase (AES-256-CBC, OpenSSL format)
// @Tags AES
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body AESEncryptRequest true "Message and passphrase"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/encrypt [post]
func (handler *cipherHandler) EncryptAES(ctx *gin.Context) {
	var request AESEncryptRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondBindError(ctx, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	cipherText, err := handler.symmetricService.Encrypt(ctx.Request.Context(), request.Message, request.Key)
	if err != nil {
		respondError(ctx, "encrypting message", err)
		return
	}
	respondAnswer(ctx, cipherText)
}

// DecryptAES handles the POST request decrypting a passphrase ciphertext.
// A wrong passphrase answers with an empty message.
// @Summary Decrypt with a passphrase
// @Tags AES
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body AESDecryptRequest true "Ciphertext and passphrase"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/decrypt [post]
func (handler *cipherHandler) DecryptAES(ctx *gin.Context) {
	var request AESDecryptRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondBindError(ctx, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	message, err := handler.symmetricService.Decrypt(ctx.Request.Context(), request.CipherText, request.Key)
	if err != nil {
		respondError(ctx, "decrypting message", err)
		return
	}
	respondAnswer(ctx, message)
}

// EncryptRSA handles the POST request encrypting a message under a fresh RSA keypair
// @Summary Encrypt with RSA-OAEP under a fresh keypair
// @Tags RSA
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body MessageRequest true "Message"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /rsa/encrypt [post]
func (handler *cipherHandler) EncryptRSA(ctx *gin.Context) {
	var request MessageRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondBindError(ctx, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	result, err := handler.asymmetricService.Encrypt(ctx.Request.Context(), request.Message)
	if err != nil {
		respondError(ctx, "encrypting message", err)
		return
	}
	respondAnswer(ctx, result)
}

// DecryptRSA handles the POST request decrypting an RSA-OAEP ciphertext with the returned private key
// @Summary Decrypt with an RSA private key
// @Tags RSA
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body RSADecryptRequest true "Ciphertext and PEM private key"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rsa/decrypt [post]
func (handler *cipherHandler) DecryptRSA(ctx *gin.Context) {
	var request RSADecryptRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondBindError(ctx, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	message, err := handler.asymmetricService.Decrypt(ctx.Request.Context(), request.CipherText, request.PrivateKey)
	if err != nil {
		respondError(ctx, "decrypting message", err)
		return
	}
	respondAnswer(ctx, message)
}

// EncryptECIES handles the POST request sealing a message to a fresh secp256k1 keypair
// @Summary Encrypt with ECIES on secp256k1
// @Tags ECIES
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body MessageRequest true "Message"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Router /ecies/encrypt [post]
func (handler *cipherHandler) EncryptECIES(ctx *gin.Context) {
	var request MessageRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondBindError(ctx, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	result, err := handler.ecService.Encrypt(ctx.Request.Context(), request.Message)
	if err != nil {
		respondError(ctx, "encrypting message", err)
		return
	}
	respondAnswer(ctx, result)
}

// DecryptECIES handles the POST request opening an ECIES envelope
// @Summary Decrypt an ECIES envelope
// @Tags ECIES
// @Accept json
// @Produce json
// @Param requestBody body ECIESDecryptRequest true "Envelope and base64 private key"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /ecies/decrypt [post]
func (handler *cipherHandler) DecryptECIES(ctx *gin.Context) {
	var request ECIESDecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBindError(ctx, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	message, err := handler.ecService.Decrypt(ctx.Request.Context(), request.EncryptInfo, request.PrivateKey)
	if err != nil {
		respondError(ctx, "decrypting envelope", err)
		return
	}
	respondAnswer(ctx, message)
}
