package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown operator or wrong password.
var ErrInvalidCredentials = errors.New("invalid operator credentials")

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// TokenService issues operator tokens for the protected routes. Credentials
// come from configuration; the password is stored as a bcrypt hash.
type TokenService struct {
	username     string
	passwordHash string
	jwt          JWTGenerator
}

// NewTokenService creates a new TokenService instance.
func NewTokenService(username, passwordHash string, jwt JWTGenerator) *TokenService {
	return &TokenService{
		username:     username,
		passwordHash: passwordHash,
		jwt:          jwt,
	}
}

// Issue authenticates an operator and returns a JWT token.
func (svc *TokenService) Issue(ctx context.Context, username, password string) (string, error) {
	if username != svc.username {
		logger.Log.Errorw("unknown operator", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(svc.passwordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid operator credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
