package models

// User represents a registered account.
//
// The application never registers users at runtime: the single account is
// created by the idempotent seed step on first startup. The model still keeps
// registration-shaped fields so the storage layer stays general.
type User struct {
	// ID is the unique identifier, assigned by the database (auto-increment).
	ID int64

	// Username is the unique login name.
	Username string

	// PasswordHash is the bcrypt hash of the user's password.
	// The reference system stored passwords in clear text; hashing here is a
	// deliberate, documented deviation.
	PasswordHash string
}
