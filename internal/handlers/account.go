package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masindi/relief-coordination-api/internal/constants"
	"github.com/masindi/relief-coordination-api/internal/dto"
	apierrors "github.com/masindi/relief-coordination-api/internal/errors"
	"github.com/masindi/relief-coordination-api/internal/middleware"
	"github.com/masindi/relief-coordination-api/internal/models"
	"github.com/masindi/relief-coordination-api/internal/services"
)

// AccountHandler coordinates registration, login, and logout.
type AccountHandler struct {
	authService *services.AuthService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(authService *services.AuthService) *AccountHandler {
	return &AccountHandler{
		authService: authService,
	}
}

// Register creates a new account, establishes the session, and redirects home.
func (h *AccountHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email       string `form:"email" json:"email" binding:"required,email"`
		Password    string `form:"password" json:"password" binding:"required"`
		FirstName   string `form:"first_name" json:"first_name" binding:"required"`
		LastName    string `form:"last_name" json:"last_name" binding:"required"`
		PhoneNumber string `form:"phone_number" json:"phone_number"`
		Address     string `form:"address" json:"address"`
		Role        string `form:"role" json:"role"`
	}

	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid registration form", err.Error())
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Role:        models.UserRole(req.Role),
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if err := middleware.EstablishSession(c, user); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Login verifies credentials, establishes the session, and redirects home.
func (h *AccountHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `form:"email" json:"email" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Email and password are required")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if err := middleware.EstablishSession(c, user); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session and redirects home. Idempotent: a request with no
// active session still succeeds.
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Me returns the authenticated user's profile.
func (h *AccountHandler) Me(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, constants.LoginPath)
		return
	}

	user, err := h.authService.GetUser(principal.ID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, apierrors.ErrCodeDuplicateEmail, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, apierrors.ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
