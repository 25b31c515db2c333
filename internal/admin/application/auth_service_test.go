package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damemahigan/site-services/api/internal/public/domain"
)

type fakeCredentialRepo struct {
	hash string
	sets int
}

func (f *fakeCredentialRepo) Get(context.Context) (string, error) {
	if f.hash == "" {
		return "", domain.ErrNotFound
	}
	return f.hash, nil
}

func (f *fakeCredentialRepo) Set(_ context.Context, hash string) error {
	f.hash = hash
	f.sets++
	return nil
}

func newTestAuthService(repo CredentialRepository) AuthService {
	return NewAuthService(repo, []byte("test-secret"), "damemahigan-api", time.Hour)
}

func TestAuthServiceFirstRunDefaultPassword(t *testing.T) {
	repo := &fakeCredentialRepo{}
	svc := newTestAuthService(repo)

	token, err := svc.Login(context.Background(), DefaultPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, repo.sets, "first login should persist the default hash")

	assert.NoError(t, svc.VerifyToken(token))
}

func TestAuthServiceRejectsWrongPassword(t *testing.T) {
	repo := &fakeCredentialRepo{}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, repo.sets, "a failed login must not touch the credential")
}

func TestAuthServiceChangePassword(t *testing.T) {
	repo := &fakeCredentialRepo{}
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, EnsureCredential(ctx, repo))
	require.NoError(t, svc.ChangePassword(ctx, DefaultPassword, "s3cret!"))

	_, err := svc.Login(ctx, DefaultPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials, "old password should no longer open the gate")

	token, err := svc.Login(ctx, "s3cret!")
	require.NoError(t, err)
	assert.NoError(t, svc.VerifyToken(token))
}

func TestAuthServiceChangePasswordRequiresCurrent(t *testing.T) {
	repo := &fakeCredentialRepo{}
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, EnsureCredential(ctx, repo))
	before := repo.hash

	err := svc.ChangePassword(ctx, "wrong", "next")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, before, repo.hash, "a rejected change must leave the credential intact")
}

func TestAuthServiceEnsureCredentialIdempotent(t *testing.T) {
	repo := &fakeCredentialRepo{}
	ctx := context.Background()

	require.NoError(t, EnsureCredential(ctx, repo))
	first := repo.hash
	require.NoError(t, EnsureCredential(ctx, repo))
	assert.Equal(t, first, repo.hash)
	assert.Equal(t, 1, repo.sets)
}

func TestAuthServiceVerifyTokenRejectsForgeries(t *testing.T) {
	repo := &fakeCredentialRepo{}
	svc := newTestAuthService(repo)

	assert.ErrorIs(t, svc.VerifyToken("not-a-token"), ErrInvalidCredentials)

	other := NewAuthService(&fakeCredentialRepo{}, []byte("other-secret"), "damemahigan-api", time.Hour)
	token, err := other.Login(context.Background(), DefaultPassword)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.VerifyToken(token), ErrInvalidCredentials)
}
