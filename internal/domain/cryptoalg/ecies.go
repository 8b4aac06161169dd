package cryptoalg

import (
	secp256k1secec "gitlab.com/yawning/secp256k1-voi/secec"
)

// ECIESProcessor implements ECIES over secp256k1: ECDH with an ephemeral key, SHA-512 key
// derivation, AES-256-CBC and an HMAC-SHA-256 tag over IV, ephemeral public key and ciphertext.
type ECIESProcessor interface {
	// Encrypt seals plaintext to the recipient public key.
	Encrypt(plainText []byte, publicKey *secp256k1secec.PublicKey) (*Envelope, error)

	// Decrypt verifies the envelope MAC and only then decrypts. A MAC mismatch or a rejected
	// ephemeral public key is reported as an integrity error.
	Decrypt(envelope *Envelope, privateKey *secp256k1secec.PrivateKey) ([]byte, error)

	// ParsePrivateKey loads a raw 32 byte private scalar.
	ParsePrivateKey(raw []byte) (*secp256k1secec.PrivateKey, error)
}
