package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"floorquote/internal/auth"
	apperrors "floorquote/internal/errors"
	"floorquote/internal/repository"
)

// BcryptCost is the adaptive hash cost used for admin passwords.
const BcryptCost = 12

// AuthService handles admin authentication.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	adminRepo  repository.AdminRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a bearer token. The error is the same
// whether the email is unknown or the password is wrong, so callers cannot
// probe for account existence.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.ID.Hex(), admin.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}
