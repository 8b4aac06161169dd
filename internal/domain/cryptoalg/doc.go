// Package cryptoalg defines the contracts and value types of the cryptographic operation layer:
// salted hashing, passphrase-based symmetric encryption, RSA-OAEP encryption, ECIES on secp256k1
// and the RSA digest signature, together with the key generator that supplies fresh keypairs per call.
package cryptoalg
