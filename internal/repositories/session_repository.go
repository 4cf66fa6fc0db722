package repositories

import "todolist/internal/models"

// SessionRepository defines the interface for server-side session state.
type SessionRepository interface {
	Create(session *models.Session) error
	GetByToken(token string) (*models.Session, error)
	Delete(token string) error
}
