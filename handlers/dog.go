package handlers

import (
	"errors"
	"net/http"

	"groomery/models"
	"groomery/services/dog"
	"groomery/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DogHandler exposes dog management over HTTP.
type DogHandler struct {
	Service dog.DogService
}

// NewDogHandler creates a DogHandler.
func NewDogHandler(service dog.DogService) *DogHandler {
	return &DogHandler{Service: service}
}

func respondDogError(c *gin.Context, err error) {
	var validationErr *dog.ValidationError
	switch {
	case errors.Is(err, dog.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", "dog not found")
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", validationErr.Message)
	default:
		getLogger(c).Error("dog operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "operation failed, please try again")
	}
}

// ListDogs handles GET /api/dogs.
func (h *DogHandler) ListDogs(c *gin.Context) {
	dogs, err := h.Service.GetAllDogs()
	if err != nil {
		respondDogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(dogs), "data": dogs})
}

// GetDog handles GET /api/dogs/:id.
func (h *DogHandler) GetDog(c *gin.Context) {
	d, err := h.Service.GetDogByID(c.Param("id"))
	if err != nil {
		respondDogError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// CreateDog handles POST /api/dogs.
func (h *DogHandler) CreateDog(c *gin.Context) {
	var input models.Dog
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	d, err := h.Service.CreateDog(input)
	if err != nil {
		respondDogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// UpdateDog handles PUT /api/dogs/:id.
func (h *DogHandler) UpdateDog(c *gin.Context) {
	var input models.Dog
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	d, err := h.Service.UpdateDog(c.Param("id"), input)
	if err != nil {
		respondDogError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DeleteDog handles DELETE /api/dogs/:id.
func (h *DogHandler) DeleteDog(c *gin.Context) {
	if err := h.Service.DeleteDog(c.Param("id")); err != nil {
		respondDogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dog deleted successfully"})
}
