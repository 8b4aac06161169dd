package v1

import (
	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
)

// SignatureHandler defines the interface for signing and validating message digests
type SignatureHandler interface {
	Sign(ctx *gin.Context)
	Validate(ctx *gin.Context)
}

type signatureHandler struct {
	signatureService cryptoalg.SignatureService
}

// NewSignatureHandler creates a new SignatureHandler
func NewSignatureHandler(signatureService cryptoalg.SignatureService) SignatureHandler {
	return &signatureHandler{
		signatureService: signatureService,
	}
}

// Sign handles the POST request signing the message digest under a fresh RSA keypair
// @Summary Sign a message digest
// @Tags Signature
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body MessageRequest true "Message"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Router /sign [post]
func (handler *signatureHandler) Sign(ctx *gin.Context) {
	var request MessageRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondBindError(ctx, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	result, err := handler.signatureService.Sign(ctx.Request.Context(), request.Message)
	if err != nil {
		respondError(ctx, "signing message", err)
		return
	}
	respondAnswer(ctx, result)
}

// Validate handles the POST request recovering the signed digest and comparing it with the message digest
// @Summary Validate a digest signature
// @Tags Signature
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body SignValidateRequest true "Message, signature and PEM public key"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sign/validate [post]
func (handler *signatureHandler) Validate(ctx *gin.Context) {
	var request SignValidateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondBindError(ctx, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	result, err := handler.signatureService.Validate(ctx.Request.Context(), request.Message, request.Signature, request.PublicKey)
	if err != nil {
		respondError(ctx, "validating signature", err)
		return
	}
	respondAnswer(ctx, result)
}
