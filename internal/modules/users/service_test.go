package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"githubsearch/internal/database"
	"githubsearch/internal/pkg/password"
	"githubsearch/internal/repository"
)

func setupService(t *testing.T) (*Service, *repository.UserRepository) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	repo := repository.NewUserRepository(db)
	return NewService(repo), repo
}

func TestCreate_Success(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserInput{
		Email:     "john.doe@example.com",
		FirstName: "John",
		LastName:  "Doe",
		Password:  "Password123!",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "john.doe@example.com", user.Email)
	assert.Empty(t, user.Password, "returned user must not carry the hash")

	stored, err := repo.GetByEmail(ctx, "john.doe@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", stored.Password)
	assert.True(t, password.Matches("Password123!", stored.Password))
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	in := CreateUserInput{
		Email:     "dup@example.com",
		FirstName: "First",
		LastName:  "User",
		Password:  "Password123!",
	}

	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestFindByEmail(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{
		Email:     "jane.doe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "Password123!",
	})
	require.NoError(t, err)

	found, err := svc.FindByEmail(ctx, "jane.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.NotEmpty(t, found.Password, "lookup for authentication needs the stored hash")

	_, err = svc.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
