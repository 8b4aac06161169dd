package cryptoalg

// SaltedHash is the result of hashing a message together with a salt.
// Digest is base64(SHA-512(message || salt)).
type SaltedHash struct {
	Salt   string
	Digest string
}

// Envelope carries an ECIES ciphertext. All four fields are required for decryption
// and the MAC covers IV, EphemPublicKey and CipherText.
type Envelope struct {
	CipherText     []byte
	IV             []byte
	MAC            []byte
	EphemPublicKey []byte
}

// EncodedEnvelope is the text form of an Envelope, each field base64 encoded.
type EncodedEnvelope struct {
	CipherText     string `json:"cipherText" validate:"required,base64"`
	IV             string `json:"iv" validate:"required,base64"`
	MAC            string `json:"mac" validate:"required,base64"`
	EphemPublicKey string `json:"ephemPublicKey" validate:"required,base64"`
}

// AsymmetricEncryption is returned by RSA encryption: the ciphertext and the only copy of the private key.
type AsymmetricEncryption struct {
	CipherText string `json:"cipherText"`
	PrivateKey string `json:"privateKey"`
}

// ECEncryption is returned by ECIES encryption: the envelope and the recipient private key.
type ECEncryption struct {
	EncryptInfo EncodedEnvelope `json:"encryptInfo"`
	PrivateKey  string          `json:"privateKey"`
}

// SignatureResult holds a digest signature and the public key able to recover it.
type SignatureResult struct {
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

// SignatureValidation reports the recomputed digest, the digest recovered from the signature
// and whether they match.
type SignatureValidation struct {
	HashedMessage string `json:"hashedMessage"`
	HashedSign    string `json:"hashedSign"`
	Valid         bool   `json:"valid"`
}
