package cryptoalg

import "crypto/rsa"

// RSAProcessor handles RSA-OAEP (SHA-256) encryption and the PEM encodings used on the wire.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Encrypt encrypts plaintext using RSA-OAEP with SHA-256 and the public key.
	// The plaintext must fit in a single OAEP block.
	Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts RSA-OAEP ciphertext using the private key.
	Decrypt(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// EncodePrivateKey renders the private key as a PKCS#8 PEM block.
	EncodePrivateKey(privateKey *rsa.PrivateKey) (string, error)

	// EncodePublicKey renders the public key as a PKCS#1 PEM block.
	EncodePublicKey(publicKey *rsa.PublicKey) string

	// ParsePrivateKey reads a PKCS#8 or PKCS#1 PEM private key.
	ParsePrivateKey(pemText string) (*rsa.PrivateKey, error)

	// ParsePublicKey reads a PKCS#1 or PKIX PEM public key.
	ParsePublicKey(pemText string) (*rsa.PublicKey, error)
}
