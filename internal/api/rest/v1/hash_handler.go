package v1

import (
	"github.com/Criscape/security-crypto-lab/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// HashHandler defines the interface for handling salted hash registration and validation
type HashHandler interface {
	Register(ctx *gin.Context)
	Validate(ctx *gin.Context)
}

type hashHandler struct {
	hashService users.HashService
}

// NewHashHandler creates a new HashHandler
func NewHashHandler(hashService users.HashService) HashHandler {
	return &hashHandler{
		hashService: hashService,
	}
}

// Register handles the POST request storing a salted hash of the message for the user
// @Summary Register a salted message hash
// @Tags Hash
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body HashRequest true "Message and user name"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Router /hash [post]
func (handler *hashHandler) Register(ctx *gin.Context) {
	var request HashRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondBindError(ctx, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	if err := handler.hashService.Register(ctx.Request.Context(), request.Username, request.Message); err != nil {
		respondError(ctx, "registering hash", err)
		return
	}

	respondAnswer(ctx, localize(ctx, answerOK))
}

// Validate handles the POST request checking a message against the user's stored hash
// @Summary Validate a message against the stored hash
// @Tags Hash
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body HashRequest true "Message and user name"
// @Success 200 {object} AnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /hash/validate [post]
func (handler *hashHandler) Validate(ctx *gin.Context) {
	var request HashRequest
	if err := ctx.ShouldBind(&request); err != nil {
		respondBindError(ctx, err)
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(ctx, err)
		return
	}

	valid, err := handler.hashService.Validate(ctx.Request.Context(), request.Username, request.Message)
	if err != nil {
		respondError(ctx, "validating hash", err)
		return
	}

	if valid {
		respondAnswer(ctx, localize(ctx, answerValid))
		return
	}
	respondAnswer(ctx, localize(ctx, answerInvalid))
}
