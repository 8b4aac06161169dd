// Package cryptography implements the cryptographic processors and the pooled key generator
// behind the operation services. Processors work on raw bytes and parsed keys; text encoding is
// left to the codec package.
package cryptography
