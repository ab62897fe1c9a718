package service

import (
	"testing"
	"time"

	"wolf-ai/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuth(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(store.New(zap.NewNop()), zap.NewNop())
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAuth(t)

	user, err := svc.Register("rami", "correct horse battery", "rami@example.com")
	require.NoError(t, err)

	assert.Equal(t, "rami", user.Username)
	assert.NotEqual(t, "correct horse battery", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuth(t)

	_, err := svc.Register("rami", "password-one", "rami@example.com")
	require.NoError(t, err)

	_, err = svc.Register("rami", "password-two", "other@example.com")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newAuth(t)
	_, err := svc.Register("rami", "correct horse battery", "rami@example.com")
	require.NoError(t, err)

	token, expiry, err := svc.Login("rami", "correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiry.After(time.Now()))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuth(t)
	_, err := svc.Register("rami", "correct horse battery", "rami@example.com")
	require.NoError(t, err)

	_, _, err = svc.Login("rami", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
