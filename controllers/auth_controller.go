package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EXROSE/VaricoCare/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Signup registers an account and returns a session token.
func (ac *AuthController) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	session, aerr := ac.auth.Signup(c.Request.Context(), req)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Login verifies credentials and returns a session token.
func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	session, aerr := ac.auth.Login(c.Request.Context(), req)
	if aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Logout revokes the caller's session token.
func (ac *AuthController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	if aerr := ac.auth.Logout(c.Request.Context(), token); aerr != nil {
		respondError(c, aerr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the session resolved from the bearer token.
func (ac *AuthController) Me(c *gin.Context) {
	session, ok := mustSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session)
}
