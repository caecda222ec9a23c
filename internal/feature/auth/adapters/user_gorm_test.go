package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"orats_data/internal/feature/auth/domain/entity"
	"orats_data/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError maps the driver's duplicate-key error to
// gorm.ErrDuplicatedKey, matching the production configuration.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &SessionModel{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user := &entity.User{
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email returns ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user1 := &entity.User{Email: "duplicate@example.com", Password: "password1"}
		require.NoError(t, repo.Create(context.Background(), user1))

		user2 := &entity.User{Email: "duplicate@example.com", Password: "password2"}
		err := repo.Create(context.Background(), user2)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		expected := &entity.User{Email: "find@example.com", Password: "hashed_password"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, expected.ID, found.ID)
		assert.Equal(t, expected.Email, found.Email)
	})

	t.Run("unknown email returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("find correct user when multiple users exist", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		users := []*entity.User{
			{Email: "user1@example.com", Password: "pass1"},
			{Email: "user2@example.com", Password: "pass2"},
			{Email: "user3@example.com", Password: "pass3"},
		}
		for _, u := range users {
			require.NoError(t, repo.Create(context.Background(), u))
		}

		found, err := repo.FindByEmail(context.Background(), "user2@example.com")

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, users[1].ID, found.ID)
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		expected := &entity.User{Email: "findbyid@example.com", Password: "hashed_password"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, expected.Email, found.Email)
	})

	t.Run("unknown ID returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGorm_Timestamps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	before := time.Now().Add(-time.Second)
	user := &entity.User{Email: "timestamp@example.com", Password: "password"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	assert.True(t, user.CreatedAt.After(before), "CreatedAt is before creation time")

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.CreatedAt.Unix(), found.CreatedAt.Unix())
}
