package cryptoalg

// AESProcessor handles passphrase based AES-256-CBC encryption in the OpenSSL "Salted__" format.
// Key and IV are derived from the passphrase and an 8 byte salt with EVP_BytesToKey (MD5, one round),
// so a ciphertext can be decrypted with nothing but the passphrase.
type AESProcessor interface {
	// Encrypt returns "Salted__" || salt || ciphertext.
	Encrypt(plainText []byte, passphrase string) ([]byte, error)

	// Decrypt reverses Encrypt. A wrong passphrase is not an error: when the padding does not
	// check out an empty plaintext is returned. Malformed input is reported as a validation error.
	Decrypt(cipherText []byte, passphrase string) ([]byte, error)
}
