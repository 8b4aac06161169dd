// Package users defines the user record persisted by the hashing operation and the
// contracts of the user store and of the registration/validation service.
package users
