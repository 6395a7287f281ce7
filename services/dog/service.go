package dog

import (
	"errors"
	"time"

	customerRepo "groomery/database/repository/customer"
	dogRepo "groomery/database/repository/dog"
	"groomery/models"
	"groomery/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound signals an unknown dog ID.
var ErrNotFound = errors.New("dog not found")

// ValidationError marks a rejected dog payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DogService manages grooming subjects.
type DogService interface {
	GetDogByID(id string) (*models.Dog, error)
	GetAllDogs() ([]models.Dog, error)
	CreateDog(dog models.Dog) (*models.Dog, error)
	UpdateDog(id string, dog models.Dog) (*models.Dog, error)
	DeleteDog(id string) error
}

// DefaultDogService is the production implementation.
type DefaultDogService struct {
	Repo      dogRepo.DogRepository
	Customers customerRepo.CustomerRepository
}

func (s *DefaultDogService) GetDogByID(id string) (*models.Dog, error) {
	d, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *DefaultDogService) GetAllDogs() ([]models.Dog, error) {
	return s.Repo.GetAll()
}

func (s *DefaultDogService) CreateDog(dog models.Dog) (*models.Dog, error) {
	if dog.Name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if dog.OwnerID == "" {
		return nil, &ValidationError{Message: "ownerId is required"}
	}

	owner, err := s.Customers.GetByID(dog.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, &ValidationError{Message: "owner not found, please select a valid customer"}
	}

	now := time.Now()
	dog.ID = uuid.New().String()
	dog.CreatedAt = now
	dog.UpdatedAt = now

	if err := s.Repo.Create(&dog); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("dog created", zap.String("id", dog.ID), zap.String("ownerId", dog.OwnerID))
	return &dog, nil
}

func (s *DefaultDogService) UpdateDog(id string, update models.Dog) (*models.Dog, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	// Ownership never changes through update; an owner transfer would
	// invalidate the dog's appointment history.
	update.ID = existing.ID
	update.OwnerID = existing.OwnerID
	update.CreatedAt = existing.CreatedAt
	update.UpdatedAt = time.Now()
	if update.Name == "" {
		update.Name = existing.Name
	}

	if err := s.Repo.Update(&update); err != nil {
		return nil, err
	}
	return &update, nil
}

func (s *DefaultDogService) DeleteDog(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.Repo.Delete(id)
}
