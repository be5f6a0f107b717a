package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cliento-portal/config"
	"github.com/cliento-portal/dto"
	"github.com/cliento-portal/models"
)

// AuthService handles registration, login and session token issuance.
type AuthService struct {
	accounts AccountStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(accounts AccountStore) *AuthService {
	return &AuthService{accounts: accounts}
}

// Register creates a new account. Role is fixed at registration and must be
// developer or client.
func (s *AuthService) Register(req dto.RegisterRequest) (models.Account, error) {
	role := models.Role(req.Role)
	if !models.ValidRole(role) {
		return models.Account{}, validationf("role must be developer or client")
	}

	if _, err := s.accounts.FindByIdentifier(req.Username); err == nil {
		return models.Account{}, validationf("username already taken")
	}
	if _, err := s.accounts.FindByIdentifier(req.Email); err == nil {
		return models.Account{}, validationf("email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	created, err := s.accounts.Create(account)
	if err != nil {
		return models.Account{}, storeFailure(err)
	}
	return created, nil
}

// Login authenticates an account and returns a signed token.
func (s *AuthService) Login(req dto.LoginRequest) (dto.AuthResponse, error) {
	account, err := s.accounts.FindByIdentifier(req.Email)
	if err != nil {
		return dto.AuthResponse{}, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, errors.New("invalid email or password")
	}

	token, expiresAt, err := GenerateToken(account)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	// Clear password hash from the response copy
	account.Password = ""

	return dto.AuthResponse{
		Token:     token,
		Account:   account,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateToken generates a new JWT token for an account
func GenerateToken(account models.Account) (string, time.Time, error) {
	secretKey := config.GetEnv("JWT_SECRET", "")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		AccountID: account.ID,
		Email:     account.Email,
		Role:      string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := config.GetEnv("JWT_SECRET", "")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
