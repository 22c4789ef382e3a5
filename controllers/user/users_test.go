package userControllers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/faukiofficial/Tokokita/apperrors"
	"github.com/faukiofficial/Tokokita/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "users.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Address{}))
	return db
}

func registerInput() RegisterInput {
	return RegisterInput{
		FullName:    "Budi Santoso",
		UserName:    "budisan",
		Email:       "budi@example.com",
		PhoneNumber: "08123456789",
		Password:    "rahasia123",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	db := openTestDB(t)

	user, err := Register(db, registerInput())
	require.NoError(t, err)

	assert.NotEqual(t, "rahasia123", user.Password)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)

	_, err := Register(db, registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.UserName = "budilain"
	_, err = Register(db, input)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.Conflict))
	assert.EqualError(t, err, "Email already used.")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := openTestDB(t)

	_, err := Register(db, registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.Email = "budi2@example.com"
	_, err = Register(db, input)
	require.Error(t, err)
	assert.EqualError(t, err, "Username already used.")
}

func TestLoginByEmailAndUsername(t *testing.T) {
	db := openTestDB(t)

	_, err := Register(db, registerInput())
	require.NoError(t, err)

	byEmail, err := Login(db, "budi@example.com", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "budisan", byEmail.UserName)

	byUsername, err := Login(db, "budisan", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, byEmail.ID, byUsername.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := openTestDB(t)

	_, err := Register(db, registerInput())
	require.NoError(t, err)

	_, err = Login(db, "budisan", "salah")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid user or password")
}

func TestLoginUnknownUser(t *testing.T) {
	db := openTestDB(t)

	_, err := Login(db, "nobody@example.com", "rahasia123")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.NotFound))
	assert.EqualError(t, err, "Invalid user or password")
}
