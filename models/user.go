package models

// User represents an account entity used for authentication and chore
// assignment. The Password field always holds a bcrypt hash, never the
// plaintext credential, and is excluded from every JSON representation.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"userid"`

	// Username is the unique, case-sensitive login identifier.
	Username string `json:"username"`

	// Password is the bcrypt hash of the user's password.
	// Never serialized; never plaintext at rest.
	Password string `json:"-"`

	// Household is the identifier of the household the user belongs to.
	// Nil while the user has not joined a household.
	Household *int64 `json:"userhousehold"`

	// Administrator marks household administrators. Defaults to false on
	// registration and is not updatable through the public API.
	Administrator bool `json:"administrator"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "fs_users"
}
