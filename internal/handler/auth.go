package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/RaidLedger/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles account creation
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists), errors.Is(err, service.ErrEmailAlreadyUsed):
			fail(c, http.StatusConflict, CodeConflict, err.Error())
		default:
			serviceError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, CodeUnauthorized, err.Error())
			return
		}
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CheckUsername reports whether a username is already taken
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		fail(c, http.StatusBadRequest, CodeValidationFailed, "username is required")
		return
	}

	taken, err := h.authService.IsUsernameTaken(c.Request.Context(), username)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": username, "taken": taken})
}
