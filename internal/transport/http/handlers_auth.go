package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/domain"
	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/usecase"
)

func (h *Handler) login(c *gin.Context) {
	var creds domain.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), creds)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.auth.Me(c.Request.Context())
	if errors.Is(err, usecase.ErrNotLoggedIn) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "auth provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) register(c *gin.Context) {
	var body struct {
		domain.User
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Username == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	created, err := h.auth.Register(c.Request.Context(), body.User, body.Password)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}
