// Package persistence provides the user store implementations.
// SQL stores use GORM over PostgreSQL or SQLite; the Redis store keeps one hash per user.
// Records are keyed by user name and writes are last-write-wins upserts.
package persistence
