package cryptoalg

import "crypto/rsa"

// SignatureProcessor implements the digest signature: the base64 SHA-256 digest of a message is
// run through the RSA private key operation with PKCS#1 v1.5 type 1 padding, and recovered again
// with the public key operation. No DigestInfo prefix is added.
type SignatureProcessor interface {
	// Digest returns base64(SHA-256(message)).
	Digest(message []byte) string

	// Sign applies the private key operation to the digest text.
	Sign(digest string, privateKey *rsa.PrivateKey) ([]byte, error)

	// Recover applies the public key operation to a signature and strips the padding,
	// returning the digest text that was signed.
	Recover(signature []byte, publicKey *rsa.PublicKey) (string, error)
}
