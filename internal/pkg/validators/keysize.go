package validators

import (
	"github.com/go-playground/validator/v10"
)

// RSAKeySizeValidation accepts the RSA modulus sizes the service is willing to generate.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Uint() {
	case 2048, 3072, 4096:
		return true
	default:
		return false
	}
}
