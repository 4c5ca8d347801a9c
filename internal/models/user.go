// Package models contains data structures for the application's domain models.
package models

// User represents an author account. Accounts are created only during
// bootstrap (the seeded admin); there is no registration endpoint.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"is_admin"`
}
