package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	byEmail map[string]User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{byEmail: make(map[string]User)} }

func (m *memUserRepo) Create(_ context.Context, user User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, _ User) (string, error) { return "token-1", nil }

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, staticTokens{})

	res, err := svc.Register(context.Background(), "dev@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "token-1", res.Token)
	assert.NotEqual(t, "s3cretpass", res.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("s3cretpass")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, staticTokens{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "dev@example.com", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dev@example.com", "otherpass1")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, staticTokens{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "dev@example.com", "s3cretpass")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "dev@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "token-1", res.Token)

	_, err = svc.Login(ctx, "dev@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cretpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
