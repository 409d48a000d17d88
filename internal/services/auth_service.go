package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

const tokenTTL = 24 * time.Hour

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	users  pgrepo.UserRepository
	secret []byte
}

func NewAuthService(users pgrepo.UserRepository, secret string) AuthService {
	return &authService{users: users, secret: []byte(secret)}
}

// Login verifies the credentials against the users table and issues an
// HS256 admin token. Unknown user and wrong password are indistinguishable
// to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	const op = "AuthService.Login"

	if username == "" || password == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "username and password are required", nil)
	}
	if len(s.secret) == 0 {
		return "", utils.E(utils.CodeInternal, op, "JWT_SECRET is not set", nil)
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeUnauthorized, op, "invalid username or password", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	if err := utils.CheckPassword(u.Password, password); err != nil {
		return "", utils.E(utils.CodeUnauthorized, op, "invalid username or password", err)
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  u.Username,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return token, nil
}
