package cryptoalg

import (
	"context"
	"crypto/rsa"

	secp256k1secec "gitlab.com/yawning/secp256k1-voi/secec"
)

// KeyGenerator supplies a fresh keypair for every call. Implementations must not cache keys.
// Generation is CPU bound, so callers pass a context bounding how long they are willing to wait.
type KeyGenerator interface {
	// GenerateRSA generates an RSA private key of the given modulus size.
	GenerateRSA(ctx context.Context, bits int) (*rsa.PrivateKey, error)

	// GenerateSecp256k1 generates a secp256k1 private key.
	GenerateSecp256k1(ctx context.Context) (*secp256k1secec.PrivateKey, error)
}
