package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userent "github.com/conclave-ai/conclave/ent/user"
	testdb "github.com/conclave-ai/conclave/test/database"
)

func TestUserService_Register(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := service.Register(ctx, "Alice@Example.com", "correct-horse")
		require.NoError(t, err)
		// Email is normalized
		assert.Equal(t, "alice@example.com", user.Email)

		row, err := client.User.Query().
			Where(userent.EmailEQ("alice@example.com")).
			Only(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "correct-horse", row.PasswordHash)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := service.Register(ctx, "alice@example.com", "another-password")
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates input", func(t *testing.T) {
		tests := []struct {
			name     string
			email    string
			password string
		}{
			{"empty email", "", "correct-horse"},
			{"not an email", "bob", "correct-horse"},
			{"short password", "bob@example.com", "short"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Register(ctx, tt.email, tt.password)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestUserService_Authenticate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	registered, err := service.Register(ctx, "carol@example.com", "correct-horse")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := service.Authenticate(ctx, "carol@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("case-insensitive email", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "Carol@Example.COM", "correct-horse")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "carol@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		// Indistinguishable from a wrong password
		_, err := service.Authenticate(ctx, "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_GetUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	registered, err := service.Register(ctx, "dave@example.com", "correct-horse")
	require.NoError(t, err)

	user, err := service.GetUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "dave@example.com", user.Email)

	_, err = service.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
