package models

import "time"

// Account is a registered user. ID doubles as the inventory user id.
type Account struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Credentials is the register and login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is returned after a successful login.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
