package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/portfolio-backend/internal/models"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	users := pgrepo.NewUserRepo(newTestDB(t))

	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &models.User{
		Username: "admin",
		Password: hash,
	}))

	return NewAuthService(users, testSecret)
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newAuthFixture(t)

	token, err := svc.Login(context.Background(), "admin", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestAuthServiceWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestAuthServiceUnknownUser(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	require.Error(t, err)
	// unknown user and wrong password look the same to the caller
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}
