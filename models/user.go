package models

import "time"

// User represents a platform account.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Name         string    `json:"name" bson:"name"`
	Photo        string    `json:"photo,omitempty" bson:"photo,omitempty"`
	Favorites    []string  `json:"favorites" bson:"favorites"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

// IsAdmin reports whether the account has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
