package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	appErr "github.com/xxxsen/taskradar/internal/pkg/errors"
	"github.com/xxxsen/taskradar/internal/pkg/jwt"
	"github.com/xxxsen/taskradar/internal/repo"
	"github.com/xxxsen/taskradar/internal/service"
	"github.com/xxxsen/taskradar/internal/testutil"
)

func uniqueEmail() string {
	return fmt.Sprintf("%s@example.com", uuid.NewString())
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	secret := []byte("test-secret")
	auth := service.NewAuthService(repo.NewUserRepo(db), secret, time.Hour)
	email := uniqueEmail()

	user, token, err := auth.Register(context.Background(), email, "pass123")
	require.NoError(t, err)
	require.Equal(t, email, user.Email)

	claims, err := jwt.ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)

	loggedIn, _, err := auth.Login(context.Background(), email, "pass123")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)
}

func TestAuthServiceLoginRejectsWrongPassword(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	auth := service.NewAuthService(repo.NewUserRepo(db), []byte("test-secret"), time.Hour)
	email := uniqueEmail()

	_, _, err := auth.Register(context.Background(), email, "pass123")
	require.NoError(t, err)

	_, _, err = auth.Login(context.Background(), email, "wrong")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
}

func TestAuthServiceLoginRejectsUnknownEmail(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	auth := service.NewAuthService(repo.NewUserRepo(db), []byte("test-secret"), time.Hour)

	_, _, err := auth.Login(context.Background(), uniqueEmail(), "pass123")
	require.ErrorIs(t, err, appErr.ErrUnauthorized)
}

func TestAuthServiceRegisterRejectsDuplicateEmail(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	auth := service.NewAuthService(repo.NewUserRepo(db), []byte("test-secret"), time.Hour)
	email := uniqueEmail()

	_, _, err := auth.Register(context.Background(), email, "pass123")
	require.NoError(t, err)

	_, _, err = auth.Register(context.Background(), email, "pass456")
	require.Error(t, err)
}

func TestAuthServiceRegisterRejectsEmptyInput(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	auth := service.NewAuthService(repo.NewUserRepo(db), []byte("test-secret"), time.Hour)

	_, _, err := auth.Register(context.Background(), "", "pass123")
	require.ErrorIs(t, err, appErr.ErrInvalid)

	_, _, err = auth.Register(context.Background(), uniqueEmail(), "")
	require.ErrorIs(t, err, appErr.ErrInvalid)
}
