package handler

import (
	"net/http"

	"github.com/Santykk/MERCADEO/internal/settings"
	"github.com/Santykk/MERCADEO/internal/user"

	"github.com/gin-gonic/gin"
)

// accessTokenMaxAge matches the JWT lifetime.
const accessTokenMaxAge = 24 * 60 * 60

type AuthHandler struct {
	users    user.Service
	settings settings.Service
}

func NewAuthHandler(users user.Service, s settings.Service) *AuthHandler {
	return &AuthHandler{users: users, settings: s}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type authResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toAuthResponse(u user.User) authResponse {
	return authResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func setAccessCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", token, accessTokenMaxAge, "/", "", false, true)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "email and a password of at least 8 characters are required")
		return
	}

	token, u, err := h.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	// A fresh account starts with default settings.
	ident := user.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
	if err := h.settings.CreateDefaults(c.Request.Context(), ident); err != nil {
		respondError(c, err)
		return
	}

	setAccessCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": toAuthResponse(u)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "email and password are required")
		return
	}

	token, u, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setAccessCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": toAuthResponse(u)})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	ident := identityFrom(c)
	if ident.IsZero() {
		respondError(c, user.ErrInvalidCredentials)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		ID:    ident.UserID.String(),
		Email: ident.Email,
		Role:  string(ident.Role),
	})
}
