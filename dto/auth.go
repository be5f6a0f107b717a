package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cliento-portal/models"
)

// TokenClaims represents the JWT claims for authenticated sessions
type TokenClaims struct {
	AccountID string `json:"accountId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token     string         `json:"token"`
	Account   models.Account `json:"account"`
	ExpiresAt time.Time      `json:"expiresAt"`
}
