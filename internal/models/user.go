package models

import "time"

// User represents a registered account. The password is only ever stored as a
// bcrypt hash; the struct never serializes it.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(80);not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(200);not null"`
	CreatedAt    time.Time `json:"created_at"`
}
