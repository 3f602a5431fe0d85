package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/interfaces/http/middleware"
	"merchant-portal.backend/internal/interfaces/http/response"
	"merchant-portal.backend/internal/usecases"
)

// AuthHandler handles staff authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Login authenticates a staff user
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Register creates a new staff user (admin only)
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// Logout drops the caller's session
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	if err := h.authUsecase.Logout(c.Request.Context(), actorID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Profile returns the caller's own user record
// GET /api/v1/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		response.Error(c, domainerrors.ErrUnauthorized)
		return
	}

	user, err := h.authUsecase.GetProfile(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
