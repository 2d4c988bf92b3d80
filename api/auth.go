package api

import (
	"errors"
	"net/http"

	"github.com/cityworks/facilitybooking/internal/domain"
	"github.com/cityworks/facilitybooking/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service auth.AuthUseCase
}

type loginResponse struct {
	Success      bool   `json:"success"`
	AdminID      int64  `json:"adminId"`
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	SessionToken string `json:"sessionToken"`
}

func NewAuthHandler(service auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)
}

func (h *AuthHandler) register(c *gin.Context) {
	var req auth.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin registered successfully"})
}

func (h *AuthHandler) login(c *gin.Context) {
	var req auth.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Success:      true,
		AdminID:      result.Admin.ID,
		Username:     result.Admin.Username,
		FullName:     result.Admin.FullName,
		Email:        result.Admin.Email,
		SessionToken: result.SessionToken,
	})
}

func (h *AuthHandler) logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), c.GetHeader(sessionHeader)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
