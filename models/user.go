package models

import "time"

// User is a platform account used to sign in to the booking surface.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	FullName     string    `bson:"full_name" json:"full_name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Verified     bool      `bson:"verified" json:"verified"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Token    string `json:"token"`
}
