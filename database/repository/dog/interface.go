package dogRepo

import "groomery/models"

// DogRepository defines methods for dog data access.
type DogRepository interface {
	// GetByID retrieves a dog by its unique ID. Returns nil when no such
	// dog exists.
	GetByID(id string) (*models.Dog, error)
	// GetAll retrieves all dogs, newest first.
	GetAll() ([]models.Dog, error)
	// GetByOwner retrieves all dogs belonging to a customer.
	GetByOwner(ownerID string) ([]models.Dog, error)
	// Create inserts a new dog record.
	Create(dog *models.Dog) error
	// Update replaces an existing dog record.
	Update(dog *models.Dog) error
	// Delete removes a dog record by its ID.
	Delete(id string) error
	// Count returns the total number of dogs.
	Count() (int64, error)
}
