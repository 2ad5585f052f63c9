package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/nsxzhou1114/conduit-api/internal/testutil"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetCurrent(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	ann := testutil.CreateUser(t, s.db, "ann")

	view, err := s.users.GetCurrent(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", view.Username)
	assert.Equal(t, "ann@example.com", view.Email)

	_, err = s.users.GetCurrent(ctx, 999)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestUserService_Update(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	register(t, s, "ann", "ann@x.com", "pw123")
	bob := testutil.CreateUser(t, s.db, "bob")

	var ann model.User
	require.NoError(t, s.db.Where("username = ?", "ann").First(&ann).Error)

	view, err := s.users.Update(ctx, ann.ID, &dto.UserUpdateFields{
		Bio:      dto.Some("hello"),
		Password: dto.Some("newpw"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", view.Bio)
	assert.Equal(t, "ann@x.com", view.Email)
	assert.Equal(t, "", view.Image)

	_, err = s.auth.Login(ctx, &dto.LoginRequest{Email: "ann@x.com", Password: "newpw"})
	require.NoError(t, err)
	_, err = s.auth.Login(ctx, &dto.LoginRequest{Email: "ann@x.com", Password: "pw123"})
	assert.True(t, errors.Is(err, errs.ErrAuth))

	view, err = s.users.Update(ctx, ann.ID, &dto.UserUpdateFields{Bio: dto.Some("")})
	require.NoError(t, err)
	assert.Equal(t, "", view.Bio)

	_, err = s.users.Update(ctx, ann.ID, &dto.UserUpdateFields{Username: dto.Some(bob.Username)})
	assert.True(t, errors.Is(err, errs.ErrConflict))

	_, err = s.users.Update(ctx, ann.ID, &dto.UserUpdateFields{Email: dto.Some("not-an-email")})
	assert.True(t, errors.Is(err, errs.ErrValidation))
}

func TestUserService_GetProfile(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	testutil.CreateUser(t, s.db, "ann")

	profile, err := s.users.GetProfile(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, "ann", profile.Username)
	assert.False(t, profile.Following)

	_, err = s.users.GetProfile(ctx, "nobody")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
