package userRepo

import "groomery/models"

// UserRepository defines methods for staff account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns nil when no such
	// user exists.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil when
	// no such user exists.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves a user holding the given session token hash.
	GetByTokenHash(hash string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update replaces an existing user record.
	Update(user *models.User) error
	// SetTokenHash stores the active session token hash (empty to revoke).
	SetTokenHash(id, hash string) error
}
