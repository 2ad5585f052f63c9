package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_SignAndParse(t *testing.T) {
	m := NewTokenManager("secret", "conduit-api", NewTokenBlacklist())

	token, err := m.Sign(42, "ann", "ann@x.io")
	require.NoError(t, err)

	claims, err := m.Parse(context.Background(), token)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "ann", claims.Username)
	assert.Equal(t, "ann@x.io", claims.Email)
	assert.Equal(t, "conduit-api", claims.Issuer)
	assert.Equal(t, TokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenManager_TokensAreUnique(t *testing.T) {
	m := NewTokenManager("secret", "conduit-api", nil)

	a, err := m.Sign(1, "ann", "ann@x.io")
	require.NoError(t, err)
	b, err := m.Sign(1, "ann", "ann@x.io")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTokenManager_Expired(t *testing.T) {
	issued := time.Now().Add(-25 * time.Hour)
	signer := NewTokenManager("secret", "conduit-api", nil, WithClock(func() time.Time { return issued }))
	token, err := signer.Sign(1, "ann", "ann@x.io")
	require.NoError(t, err)

	m := NewTokenManager("secret", "conduit-api", nil)
	_, err = m.Parse(context.Background(), token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrAuth))
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", "conduit-api", nil)
	token, err := m.Sign(1, "ann", "ann@x.io")
	require.NoError(t, err)

	cases := map[string]struct {
		manager *TokenManager
		token   string
	}{
		"wrong secret": {NewTokenManager("other", "conduit-api", nil), token},
		"wrong issuer": {NewTokenManager("secret", "someone-else", nil), token},
		"malformed":    {m, "not-a-token"},
		"empty":        {m, ""},
		"tampered":     {m, token[:len(token)-2] + "xx"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.manager.Parse(context.Background(), tc.token)
			require.Error(t, err)
			assert.Equal(t, 401, errs.Status(err))
		})
	}
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	m := NewTokenManager("secret", "conduit-api", nil)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		Issuer:    "conduit-api",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(context.Background(), token)
	assert.True(t, errors.Is(err, errs.ErrAuth))
}

func TestTokenManager_Revoke(t *testing.T) {
	ctx := context.Background()
	m := NewTokenManager("secret", "conduit-api", NewTokenBlacklist())

	revoked, err := m.Sign(1, "ann", "ann@x.io")
	require.NoError(t, err)
	other, err := m.Sign(1, "ann", "ann@x.io")
	require.NoError(t, err)

	claims, err := m.Parse(ctx, revoked)
	require.NoError(t, err)
	require.NoError(t, m.Revoke(ctx, claims))

	_, err = m.Parse(ctx, revoked)
	assert.True(t, errors.Is(err, errs.ErrAuth))

	_, err = m.Parse(ctx, other)
	assert.NoError(t, err)
}
