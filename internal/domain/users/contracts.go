package users

import "context"

// UserRepository is the persistent keyed store of user records.
type UserRepository interface {
	// Upsert stores the record, replacing salt and hash when the name already exists.
	Upsert(ctx context.Context, user *UserRecord) error

	// GetByName returns the record for name or an error wrapping apperrors.ErrNotFound.
	GetByName(ctx context.Context, name string) (*UserRecord, error)
}

// HashService registers salted message hashes per user and validates messages against them.
type HashService interface {
	// Register hashes message with a new salt and upserts the result under username.
	Register(ctx context.Context, username, message string) error

	// Validate reports whether message matches the hash stored for username.
	Validate(ctx context.Context, username, message string) (bool, error)
}
