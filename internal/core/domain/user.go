package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrEmailExists = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("not authenticated")

// User is a marketplace account. The password is stored as a plain string:
// the store is local to a single machine and the profile page round-trips
// the stored value back into the edit form.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}
