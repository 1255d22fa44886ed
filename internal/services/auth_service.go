package services

import (
	"fmt"
	"log"
	"time"

	"kudos/internal/models"
	"kudos/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "kudos_session"

// AuthService handles registration, login, and session token verification.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which the session token is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterUser creates a new account with its profile, hashes the password,
// and returns a session token for the fresh user.
func (s *AuthService) RegisterUser(email, password, firstName, lastName string) (string, error) {
	if existingUser, err := s.userRepo.GetByEmail(email); err == nil && existingUser != nil {
		return "", fmt.Errorf("email '%s' already registered", email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Profile: models.Profile{
			FirstName:  firstName,
			LastName:   lastName,
			Department: "MARKETING",
		},
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	return s.issueToken(user)
}

// LoginUser authenticates a user and returns a session token if successful.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a session token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GetUser resolves a session token to its user, or nil when the token is
// absent, invalid, or refers to a user that no longer exists. It never
// returns an error for an unauthenticated request.
func (s *AuthService) GetUser(tokenString string) *models.User {
	if tokenString == "" {
		return nil
	}
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil
	}
	user.Password = ""
	return user
}
