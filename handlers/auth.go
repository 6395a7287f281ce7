package handlers

import (
	"errors"
	"net/http"

	"groomery/services/user"
	"groomery/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes staff registration and login.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(service user.UserService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// Register handles POST /api/users/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.Register(input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "Registration failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/users/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", err.Error())
			return
		}
		getLogger(c).Error("login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "authentication failed, please try again")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/users/me for the authenticated staff account.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	u, err := h.Service.GetUserByID(userID.(string))
	if err != nil {
		getLogger(c).Error("failed to fetch profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, u)
}

// Revoke handles DELETE /api/users/revoke, signing out the current session.
func (h *AuthHandler) Revoke(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.RevokeAuthToken(userID.(string)); err != nil {
		getLogger(c).Error("failed to revoke token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "failed to revoke token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
