package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, s *services, username, email, password string) string {
	t.Helper()
	token, err := s.auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return token
}

func TestAuthService_Register(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	token := register(t, s, "ann", "ann@x.com", "pw123")

	claims, err := s.tokens.Parse(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ann", claims.Username)
	assert.Equal(t, "ann@x.com", claims.Email)

	var user model.User
	require.NoError(t, s.db.Where("username = ?", "ann").First(&user).Error)
	assert.NotEqual(t, "pw123", user.Password)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestAuthService_RegisterConflict(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	register(t, s, "ann", "ann@x.com", "pw123")

	cases := map[string]*dto.RegisterRequest{
		"same email":    {Email: "ann@x.com", Username: "other", Password: "pw"},
		"same username": {Email: "other@x.com", Username: "ann", Password: "pw"},
		"email case":    {Email: "ANN@x.com", Username: "third", Password: "pw"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.auth.Register(ctx, req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrConflict))
			assert.Equal(t, 409, errs.Status(err))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	register(t, s, "ann", "ann@x.com", "pw123")

	token, err := s.auth.Login(ctx, &dto.LoginRequest{Email: "ann@x.com", Password: "pw123"})
	require.NoError(t, err)
	_, err = s.tokens.Parse(ctx, token)
	require.NoError(t, err)

	_, wrongPassword := s.auth.Login(ctx, &dto.LoginRequest{Email: "ann@x.com", Password: "nope"})
	_, unknownEmail := s.auth.Login(ctx, &dto.LoginRequest{Email: "who@x.com", Password: "pw123"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.True(t, errors.Is(wrongPassword, errs.ErrAuth))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Logout(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	token := register(t, s, "ann", "ann@x.com", "pw123")

	require.NoError(t, s.auth.Logout(ctx, token))

	_, err := s.tokens.Parse(ctx, token)
	assert.True(t, errors.Is(err, errs.ErrAuth))

	err = s.auth.Logout(ctx, token)
	assert.True(t, errors.Is(err, errs.ErrAuth))
}
