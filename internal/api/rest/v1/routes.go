package v1

import (
	"net/http"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	hashService users.HashService,
	symmetricService cryptoalg.SymmetricCipherService,
	asymmetricService cryptoalg.AsymmetricCipherService,
	ecService cryptoalg.ECCipherService,
	signatureService cryptoalg.SignatureService) {

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, localize(ctx, answerRoot))
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group(BasePath) // lookup in version file

	v1.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, localize(ctx, answerSec))
	})

	// Hash Routes
	hashHandler := NewHashHandler(hashService)
	v1.POST("/hash", hashHandler.Register)
	v1.POST("/hash/validate", hashHandler.Validate)

	// Cipher Routes
	cipherHandler := NewCipherHandler(symmetricService, asymmetricService, ecService)
	v1.POST("/aes/encrypt", cipherHandler.EncryptAES)
	v1.POST("/aes/decrypt", cipherHandler.DecryptAES)
	v1.POST("/rsa/encrypt", cipherHandler.EncryptRSA)
	v1.POST("/rsa/decrypt", cipherHandler.DecryptRSA)
	v1.POST("/ecies/encrypt", cipherHandler.EncryptECIES)
	v1.POST("/ecies/decrypt", cipherHandler.DecryptECIES)

	// Signature Routes
	signatureHandler := NewSignatureHandler(signatureService)
	v1.POST("/sign", signatureHandler.Sign)
	v1.POST("/sign/validate", signatureHandler.Validate)
}
