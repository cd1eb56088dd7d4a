package usecase

import (
	"context"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"apartio/internal/infrastructure/auth"
	"apartio/pkg/errors"
)

type AuthUseCase struct {
	adminPassword     string
	adminPasswordHash string
	tokenManager      *auth.TokenManager
}

func NewAuthUseCase(adminPassword, adminPasswordHash string, tokenManager *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		adminPassword:     adminPassword,
		adminPasswordHash: adminPasswordHash,
		tokenManager:      tokenManager,
	}
}

// Login compares the submitted secret against the configured admin password
// and returns a signed token on success. When ADMIN_PASSWORD_HASH is set the
// comparison uses bcrypt; the plain-text comparison is the development
// fallback.
func (uc *AuthUseCase) Login(ctx context.Context, secret string) (string, error) {
	if secret == "" {
		return "", errors.BadRequest("Password is required", nil)
	}

	if !uc.secretMatches(secret) {
		return "", errors.Unauthorized("Invalid password", nil)
	}

	token, err := uc.tokenManager.Generate()
	if err != nil {
		return "", errors.Internal("Server error during authentication", err)
	}

	return token, nil
}

func (uc *AuthUseCase) secretMatches(secret string) bool {
	if uc.adminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(uc.adminPasswordHash), []byte(secret)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(uc.adminPassword)) == 1
}

// Verify decodes a previously issued token. Invalid tokens map to a 400 so
// the verify endpoint can distinguish them from a missing header (401).
func (uc *AuthUseCase) Verify(ctx context.Context, token string) (*auth.AdminClaims, error) {
	claims, err := uc.tokenManager.Verify(token)
	if err != nil {
		return nil, errors.BadRequest("Invalid token", err)
	}

	return claims, nil
}
