package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"suponos_backend/internal/models"
	"suponos_backend/internal/services"
	"suponos_backend/pkg/utils"
)

// AuthHandler serves registration, login, and the authenticated profile
// endpoint for the admin panel.
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates an admin account. The client logs in afterwards to get a
// token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.InsertUser
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if !utils.IsValidEmail(req.Email) {
		utils.RespondValidationFailed(c, "email is not a valid address")
		return
	}

	resp, err := h.service.RegisterUser(req)
	if err != nil {
		if errors.Is(err, services.ErrAccountExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Username or email already registered", ""))
			return
		}
		utils.LogError(err, "Register failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Could not register account", ""))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login verifies credentials and returns the account with an access token.
// Unknown username and wrong password are deliberately indistinguishable.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	resp, err := h.service.LoginUser(creds)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid username or password", ""))
			return
		}
		utils.LogError(err, "Login failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Could not log in", ""))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Profile returns the authenticated user's account.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required", ""))
		return
	}

	user, err := h.service.GetUserProfile(userID.(int64))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Account not found", ""))
			return
		}
		utils.LogError(err, "Profile lookup failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Could not load profile", ""))
		return
	}
	c.JSON(http.StatusOK, user)
}
