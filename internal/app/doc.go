// Package app implements the operation services: each composes the cryptographic processors,
// the key generator and the codec, and the hash service additionally reads and writes the user store.
package app
