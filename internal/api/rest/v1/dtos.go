package v1

import (
	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/validators"
)

// HashRequest is the body of /hash and /hash/validate. An empty message is a valid input.
type HashRequest struct {
	Message  string `json:"message" form:"message"`
	Username string `json:"username" form:"username" validate:"required,max=255"`
}

// Validate for validating HashRequest struct
func (r *HashRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// AESEncryptRequest is the body of /aes/encrypt
type AESEncryptRequest struct {
	Message string `json:"message" form:"message"`
	Key     string `json:"key" form:"key" validate:"required"`
}

// Validate for validating AESEncryptRequest struct
func (r *AESEncryptRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// AESDecryptRequest is the body of /aes/decrypt
type AESDecryptRequest struct {
	CipherText string `json:"cipherText" form:"cipherText" validate:"required,base64"`
	Key        string `json:"key" form:"key" validate:"required"`
}

// Validate for validating AESDecryptRequest struct
func (r *AESDecryptRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// MessageRequest is the body of the endpoints generating a fresh keypair: /rsa/encrypt, /ecies/encrypt and /sign
type MessageRequest struct {
	Message string `json:"message" form:"message"`
}

// Validate for validating MessageRequest struct
func (r *MessageRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// RSADecryptRequest is the body of /rsa/decrypt
type RSADecryptRequest struct {
	CipherText string `json:"cipherText" form:"cipherText" validate:"required,base64"`
	PrivateKey string `json:"privateKey" form:"privateKey" validate:"required"`
}

// Validate for validating RSADecryptRequest struct
func (r *RSADecryptRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// ECIESDecryptRequest is the body of /ecies/decrypt. JSON only, encryptInfo is a nested object.
type ECIESDecryptRequest struct {
	EncryptInfo cryptoalg.EncodedEnvelope `json:"encryptInfo"`
	PrivateKey  string                    `json:"privateKey" validate:"required,base64"`
}

// Validate for validating ECIESDecryptRequest struct
func (r *ECIESDecryptRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// SignValidateRequest is the body of /sign/validate
type SignValidateRequest struct {
	Message   string `json:"message" form:"message"`
	Signature string `json:"signature" form:"signature" validate:"required,base64"`
	PublicKey string `json:"publicKey" form:"publicKey" validate:"required"`
}

// Validate for validating SignValidateRequest struct
func (r *SignValidateRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// AnswerResponse wraps every successful result
type AnswerResponse struct {
	Answer interface{} `json:"answer"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}
