package handlers

import (
	"errors"
	"net/http"

	"groomery/models"
	"groomery/services/customer"
	"groomery/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler exposes customer management over HTTP.
type CustomerHandler struct {
	Service customer.CustomerService
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(service customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: service}
}

func respondCustomerError(c *gin.Context, err error) {
	var validationErr *customer.ValidationError
	switch {
	case errors.Is(err, customer.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", "customer not found")
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", validationErr.Message)
	default:
		getLogger(c).Error("customer operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "operation failed, please try again")
	}
}

// ListCustomers handles GET /api/customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.Service.GetAllCustomers()
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "data": customers})
}

// GetCustomer handles GET /api/customers/:id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	cust, err := h.Service.GetCustomerByID(c.Param("id"))
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// CreateCustomer handles POST /api/customers.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var input models.Customer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	cust, err := h.Service.CreateCustomer(input)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

// UpdateCustomer handles PUT /api/customers/:id.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var input models.Customer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	cust, err := h.Service.UpdateCustomer(c.Param("id"), input)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// DeleteCustomer handles DELETE /api/customers/:id.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.Service.DeleteCustomer(c.Param("id")); err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// ListCustomerDogs handles GET /api/customers/:id/dogs.
func (h *CustomerHandler) ListCustomerDogs(c *gin.Context) {
	dogs, err := h.Service.GetCustomerDogs(c.Param("id"))
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(dogs), "data": dogs})
}
