// Package v1 exposes the cryptographic operations over REST with gin.
// Requests bind from JSON or url-encoded forms into one typed struct per endpoint,
// are validated at the boundary and answered as {"answer": ...}.
package v1
