package customerRepo

import "groomery/models"

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// GetByID retrieves a customer by its unique ID. Returns nil when
	// no such customer exists.
	GetByID(id string) (*models.Customer, error)
	// GetAll retrieves all customers, newest first.
	GetAll() ([]models.Customer, error)
	// Create inserts a new customer record.
	Create(customer *models.Customer) error
	// Update replaces an existing customer record.
	Update(customer *models.Customer) error
	// Delete removes a customer record by its ID.
	Delete(id string) error
	// Count returns the total number of customers.
	Count() (int64, error)
}
