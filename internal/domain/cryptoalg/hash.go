package cryptoalg

// HashProcessor produces salted SHA-512 digests and verifies messages against them.
type HashProcessor interface {
	// GenerateSalt returns a new salt according to the configured salt mode.
	GenerateSalt() (string, error)

	// Hash digests message||salt. An empty salt is replaced with a freshly generated one.
	Hash(message, salt string) (*SaltedHash, error)

	// Verify recomputes the digest of message||salt and compares it with digest in constant time.
	Verify(message, salt, digest string) bool
}
