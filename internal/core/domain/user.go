package domain

import "errors"

var ErrNoSession = errors.New("no active session")

// User models a registered account. The password is stored in plain text on
// purpose: the directory simulates a backend, it is not a security boundary.
// Snapshots handed to callers carry an empty Password field.
type User struct {
	ID       string `json:"id" bson:"id"`
	Username string `json:"username" bson:"username"`
	Password string `json:"password,omitempty" bson:"password,omitempty"`
}

// Sanitized returns a copy of the user with the password stripped, suitable
// for the current-user snapshot.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
