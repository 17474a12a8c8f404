package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/aurelia-studio/site-core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

var (
	ErrBadCredentials = errors.New("invalid password")
	ErrAuthDisabled   = errors.New("no admin password is configured")
)

type LoginDTO struct {
	Password string `json:"password" binding:"required"`
}

type Service struct {
	adminPassword string
}

func NewService(adminPassword string) *Service {
	return &Service{adminPassword: adminPassword}
}

// Login checks the password against the configured admin secret and issues a
// signed token. The configured value may be a bcrypt hash or a plain secret.
func (s *Service) Login(password string) (string, error) {
	if s.adminPassword == "" {
		return "", ErrAuthDisabled
	}
	if !s.verify(password) {
		return "", ErrBadCredentials
	}
	return jwt.Sign("admin", tokenTTL)
}

func (s *Service) verify(password string) bool {
	if isBcryptHash(s.adminPassword) {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.adminPassword), []byte(password)) == 1
}

func isBcryptHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}
