package models

import "time"

// Session is the server-side record of a login. The browser only ever holds a
// signed wrapper around Token, so deleting the row invalidates the login even
// if the cookie is still presented.
type Session struct {
	Token     string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    uint      `gorm:"index;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time
}
