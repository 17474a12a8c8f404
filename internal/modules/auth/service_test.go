package auth

import (
	"testing"

	"github.com/aurelia-studio/site-core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginPlainSecret(t *testing.T) {
	svc := NewService("hunter2")

	token, err := svc.Login("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService("hunter2")

	_, err := svc.Login("letmein")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewService(string(hash))

	_, err = svc.Login("hunter2")
	assert.NoError(t, err)

	_, err = svc.Login("letmein")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLoginDisabledWithoutPassword(t *testing.T) {
	svc := NewService("")

	_, err := svc.Login("anything")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}
