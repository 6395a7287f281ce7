package customer

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

// ErrNotFound signals an unknown customer ID.
var ErrNotFound = errors.New("customer not found")

// ValidationError marks a rejected customer payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CustomerService manages grooming clients.
type CustomerService interface {
	GetCustomerByID(id string) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	CreateCustomer(customer models.Customer) (*models.Customer, error)
	UpdateCustomer(id string, customer models.Customer) (*models.Customer, error)
	DeleteCustomer(id string) error
	GetCustomerDogs(id string) ([]models.Dog, error)
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
	Dogs dogRepo.DogRepository
}

func (s *DefaultCustomerService) GetCustomerByID(id string) (*models.Customer, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *DefaultCustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.Repo.GetAll()
}

func (s *DefaultCustomerService) CreateCustomer(customer models.Customer) (*models.Customer, error) {
	if customer.Name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if customer.Phone == "" {
		return nil, &ValidationError{Message: "phone is required"}
	}

	now := time.Now()
	customer.ID = uuid.New().String()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if err := s.Repo.Create(&customer); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("customer created", zap.String("id", customer.ID))
	return &customer, nil
}

func (s *DefaultCustomerService) UpdateCustomer(id string, update models.Customer) (*models.Customer, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if update.Name != "" {
		existing.Name = update.Name
	}
	if update.Phone != "" {
		existing.Phone = update.Phone
	}
	if update.Email != "" {
		existing.Email = update.Email
	}
	if update.Occupation != "" {
		existing.Occupation = update.Occupation
	}
	if update.Address != "" {
		existing.Address = update.Address
	}
	existing.UpdatedAt = time.Now()

	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DefaultCustomerService) DeleteCustomer(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.Repo.Delete(id)
}

// GetCustomerDogs lists the dogs owned by a customer.
func (s *DefaultCustomerService) GetCustomerDogs(id string) ([]models.Dog, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return s.Dogs.GetByOwner(id)
}
