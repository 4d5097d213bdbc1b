package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/server/http/dto"
	"github.com/polkiloo/storemart/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	role := model.RoleCustomer
	if req.Role != "" {
		parsed, ok := model.ParseRole(req.Role)
		if !ok {
			c.Status(http.StatusBadRequest)
			return
		}
		role = parsed
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password, role)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)})
}
