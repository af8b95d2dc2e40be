package domain

import "time"

// User is a registered identity. Email is the login key and is unique.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-" gorm:"not null"` // Never return the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
