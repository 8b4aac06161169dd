package cryptoalg

import "context"

// SymmetricCipherService encrypts and decrypts text under a caller supplied passphrase.
type SymmetricCipherService interface {
	// Encrypt returns the base64 "Salted__" ciphertext.
	Encrypt(ctx context.Context, message, key string) (string, error)

	// Decrypt returns the plaintext, or an empty string when the passphrase is wrong.
	Decrypt(ctx context.Context, cipherText, key string) (string, error)
}

// AsymmetricCipherService encrypts under a fresh RSA keypair and hands back the private key.
type AsymmetricCipherService interface {
	Encrypt(ctx context.Context, message string) (*AsymmetricEncryption, error)
	Decrypt(ctx context.Context, cipherText, privateKey string) (string, error)
}

// ECCipherService encrypts under a fresh secp256k1 keypair and hands back the private key.
type ECCipherService interface {
	Encrypt(ctx context.Context, message string) (*ECEncryption, error)
	Decrypt(ctx context.Context, encryptInfo EncodedEnvelope, privateKey string) (string, error)
}

// SignatureService signs message digests under a fresh RSA keypair and validates them.
type SignatureService interface {
	Sign(ctx context.Context, message string) (*SignatureResult, error)
	Validate(ctx context.Context, message, signature, publicKey string) (*SignatureValidation, error)
}
