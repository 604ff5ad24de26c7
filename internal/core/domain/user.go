package domain

import "time"

// User represents a user of the application in the domain.
// PasswordHash is empty for accounts provisioned through Google sign-in.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"` // Unique
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GoogleUserInfo holds the identity fields extracted from a validated
// Google ID token.
type GoogleUserInfo struct {
	Email string
	Name  string
}
