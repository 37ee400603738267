package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"project-hub/internal/cache"
	"project-hub/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	newTokenID = uuid.NewString
}

func sampleUser() model.User {
	return model.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", Role: model.RoleMember}
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	var gotCost int
	bcryptGenerateFromPassword = func(pw []byte, cost int) ([]byte, error) {
		gotCost = cost
		return bcrypt.GenerateFromPassword(pw, bcrypt.MinCost)
	}
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.Equal(t, 12, gotCost)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	u := model.User{PasswordHash: string(hash)}
	require.NoError(t, AuthenticateUser(u, "pw"))
	require.ErrorIs(t, AuthenticateUser(u, "bad"), ErrInvalidCredentials)
}

func TestIssue(t *testing.T) {
	t.Cleanup(restoreGlobals)
	_, _, err := (&TokenService{TTL: time.Minute}).Issue(sampleUser())
	require.Error(t, err)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	newTokenID = func() string { return "jti-1" }

	u := sampleUser()
	s := NewTokenService("s", time.Hour, nil)
	tok, claims, err := s.Issue(u)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
	require.Equal(t, "jti-1", claims.ID)
	require.Equal(t, now.Add(time.Hour), claims.ExpiresAt.Time)

	parsed := &Claims{}
	_, err = jwt.ParseWithClaims(tok, parsed, func(*jwt.Token) (any, error) { return []byte("s"), nil },
		jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)
	require.Equal(t, u.ID, parsed.UserID)
	require.Equal(t, u.Email, parsed.Email)
	require.Equal(t, model.RoleMember, parsed.Role)
	require.Equal(t, "Alice", parsed.Name)
}

func TestVerify(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()

	_, err := (&TokenService{}).Verify(ctx, "abc")
	require.Error(t, err)

	s := NewTokenService("s", time.Minute, cache.MapCache())
	_, err = s.Verify(ctx, "invalid")
	require.Error(t, err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": uuid.NewString()}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = s.Verify(ctx, tokNone)
	require.Error(t, err)

	other, _, err := NewTokenService("other", time.Minute, nil).Issue(sampleUser())
	require.NoError(t, err)
	_, err = s.Verify(ctx, other)
	require.Error(t, err)

	parseWithClaims = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = s.Verify(ctx, "whatever")
	require.Error(t, err)
	parseWithClaims = jwt.ParseWithClaims

	noUser, _, err := s.Issue(model.User{})
	require.NoError(t, err)
	_, err = s.Verify(ctx, noUser)
	require.Error(t, err)

	u := sampleUser()
	tok, _, err := s.Issue(u)
	require.NoError(t, err)
	claims, err := s.Verify(ctx, tok)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
}

func TestVerifyExpired(t *testing.T) {
	t.Cleanup(restoreGlobals)
	s := NewTokenService("s", time.Minute, nil)
	start := time.Now()
	timeNow = func() time.Time { return start }
	tok, _, err := s.Issue(sampleUser())
	require.NoError(t, err)

	timeNow = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = s.Verify(context.Background(), tok)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestRevoke(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	c := cache.MapCache()
	var gotTTL time.Duration
	set := c.SetFn
	c.SetFn = func(ctx context.Context, key string, v any, ttl time.Duration) *redis.StatusCmd {
		gotTTL = ttl
		return set(ctx, key, v, ttl)
	}

	s := NewTokenService("s", time.Hour, c)
	tok, claims, err := s.Issue(sampleUser())
	require.NoError(t, err)

	require.NoError(t, s.Revoke(ctx, claims))
	require.InDelta(t, time.Hour.Seconds(), gotTTL.Seconds(), 5)

	_, err = s.Verify(ctx, tok)
	require.ErrorIs(t, err, ErrTokenRevoked)

	require.NoError(t, s.Revoke(ctx, nil))
	require.NoError(t, s.Revoke(ctx, &Claims{}))

	expired := &Claims{RegisteredClaims: jwt.RegisteredClaims{ID: "x", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}}
	gotTTL = 0
	require.NoError(t, s.Revoke(ctx, expired))
	require.Zero(t, gotTTL)
}

func TestVerifyRevocationCacheFailure(t *testing.T) {
	t.Cleanup(restoreGlobals)
	c := &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", errors.New("redis down"))
	}}
	s := NewTokenService("s", time.Minute, c)
	tok, _, err := s.Issue(sampleUser())
	require.NoError(t, err)

	_, err = s.Verify(context.Background(), tok)
	require.ErrorContains(t, err, "redis down")
}
