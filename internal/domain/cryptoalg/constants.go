package cryptoalg

// RSAKeySize2048 is the default modulus size for freshly generated RSA keypairs
const RSAKeySize2048 = 2048

// RSAKeySize3072 is an accepted RSA modulus size
const RSAKeySize3072 = 3072

// RSAKeySize4096 is an accepted RSA modulus size
const RSAKeySize4096 = 4096

// SaltModeRandom generates salts from a cryptographically secure source
const SaltModeRandom = "random"

// SaltModeLegacy generates three-decimal pseudo-random fractions such as "0.417".
// It is weak and only kept so hashes registered by older deployments can still be produced.
const SaltModeLegacy = "legacy"

// OpenSSLSaltHeader prefixes passphrase-encrypted payloads, followed by an 8 byte salt
const OpenSSLSaltHeader = "Salted__"

// OpenSSLSaltSize is the size in bytes of the salt embedded after OpenSSLSaltHeader
const OpenSSLSaltSize = 8

// AESKeySize256 is the AES-256 key size in bytes
const AESKeySize256 = 32

// ECIESPrivateKeySize is the size in bytes of a raw secp256k1 private scalar
const ECIESPrivateKeySize = 32

// ECIESPublicKeySize is the size in bytes of an uncompressed SEC 1 secp256k1 point
const ECIESPublicKeySize = 65

// ECIESIVSize is the AES-CBC initialization vector size used in envelopes
const ECIESIVSize = 16

// ECIESMACSize is the HMAC-SHA-256 tag size used in envelopes
const ECIESMACSize = 32
