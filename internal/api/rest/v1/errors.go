package v1

import (
	"fmt"
	"net/http"

	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

func respondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request data: %v", err)})
}

func respondValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
}

// respondError maps err onto its status code with the error taxonomy. Client errors carry
// the detail; server side failures get a generic message and the detail goes to the access log.
func respondError(ctx *gin.Context, action string, err error) {
	_ = ctx.Error(err)

	status := apperrors.HTTPStatus(err)
	switch status {
	case http.StatusInternalServerError:
		ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("error %s: internal error", action)})
	case http.StatusServiceUnavailable:
		ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("error %s: service busy, try again later", action)})
	default:
		ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("error %s: %v", action, err)})
	}
}

func respondAnswer(ctx *gin.Context, answer interface{}) {
	ctx.JSON(http.StatusOK, AnswerResponse{Answer: answer})
}
