package models

import "time"

// User represents an admin account.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertUser is the client-supplied portion of a user record. Password is the
// plaintext credential; it is hashed before reaching storage.
type InsertUser struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
}

// Credentials is a login request.
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
