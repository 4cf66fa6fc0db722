package models

import "time"

// Task is a single to-do item. Every task belongs to exactly one user and is
// only reachable through operations scoped to that user's ID.
type Task struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null"`
	Done      bool      `json:"done" gorm:"not null;default:false"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
