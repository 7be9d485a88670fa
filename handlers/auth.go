package handlers

import (
	"net/http"

	"mandry/services/user"
	"mandry/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes account endpoints.
type AuthHandler struct {
	UserService user.UserService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserService: svc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	resp, err := h.UserService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	resp, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		// Credential failures come back as 401, not the generic mapping.
		utils.GetLogger().Warn("Login failed", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	account, err := h.UserService.GetByID(userID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// AddFavoriteHandler handles POST /api/auth/favorites/:attractionId.
func (h *AuthHandler) AddFavoriteHandler(c *gin.Context) {
	userID := c.GetString("userID")
	account, err := h.UserService.AddFavorite(userID, c.Param("attractionId"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// RemoveFavoriteHandler handles DELETE /api/auth/favorites/:attractionId.
func (h *AuthHandler) RemoveFavoriteHandler(c *gin.Context) {
	userID := c.GetString("userID")
	account, err := h.UserService.RemoveFavorite(userID, c.Param("attractionId"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}
