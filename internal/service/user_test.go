package service_test

import (
	"context"
	"testing"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/security"
	"rentable-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success hashes password", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := service.NewUserService(repo, new(MockTokenManager))

		repo.On("GetByEmail", ctx, "renter@example.com").Return(nil, domain.ErrNotFound)
		repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			ok, _ := security.CheckPassword(u.PasswordHash, "correct-horse")
			return u.Email == "renter@example.com" && ok
		})).Return(nil)

		u, err := svc.Register(ctx, "renter@example.com", "correct-horse")
		require.NoError(t, err)
		assert.NotEqual(t, "correct-horse", u.PasswordHash)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := service.NewUserService(repo, new(MockTokenManager))
		repo.On("GetByEmail", ctx, "renter@example.com").Return(&domain.User{ID: uuid.New()}, nil)

		_, err := svc.Register(ctx, "renter@example.com", "correct-horse")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("Rejects malformed input", func(t *testing.T) {
		svc := service.NewUserService(new(MockUserRepo), new(MockTokenManager))
		_, err := svc.Register(ctx, "not-an-email", "correct-horse")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = svc.Register(ctx, "a@example.com", "short")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	hash, err := security.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := new(MockUserRepo)
	tm := new(MockTokenManager)
	svc := service.NewUserService(repo, tm)

	repo.On("GetByEmail", ctx, "owner@example.com").Return(&domain.User{ID: id, Email: "owner@example.com", PasswordHash: hash}, nil)
	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)
	tm.On("GenerateAccessToken", id, "owner@example.com").Return("signed.jwt.token", nil)

	token, err := svc.Authenticate(ctx, "owner@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)

	_, err = svc.Authenticate(ctx, "owner@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
