package services

import (
	"context"
	"crypto/subtle"

	"github.com/ArowuTest/committee-manager/internal/models"
	"github.com/ArowuTest/committee-manager/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// AdminRole is the role claim carried by admin tokens
const AdminRole = "admin"

type authService struct {
	adminUsername     string
	adminPasswordHash []byte
	tokens            *jwt.TokenService
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(adminUsername, adminPasswordHash string, tokens *jwt.TokenService) AuthService {
	return &authService{
		adminUsername:     adminUsername,
		adminPasswordHash: []byte(adminPasswordHash),
		tokens:            tokens,
	}
}

// Login handles admin login
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.adminUsername)) != 1 {
		slog.Warn("Login attempt with unknown username", "username", req.Username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(req.Password)); err != nil {
		slog.Warn("Login attempt with wrong password", "username", req.Username)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(req.Username, AdminRole)
	if err != nil {
		slog.Error("Failed to issue token", "error", err, "username", req.Username)
		return "", err
	}

	slog.Info("Admin logged in", "username", req.Username)
	return token, nil
}
