// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"project-hub/internal/cache"
	"project-hub/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenRevoked       = errors.New("token revoked")
)

// 測試時可覆寫
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
	newTokenID      = uuid.NewString
)

// Claims 定義 JWT 負載內容
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Name   string    `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService 簽發與驗證 HS256 存取令牌；Revoked 存放已登出的 token ID
type TokenService struct {
	Secret  []byte
	TTL     time.Duration
	Revoked cache.Cache
}

func NewTokenService(secret string, ttl time.Duration, revoked cache.Cache) *TokenService {
	return &TokenService{Secret: []byte(secret), TTL: ttl, Revoked: revoked}
}

// AuthenticateUser 以 bcrypt 比對明文密碼，失敗一律回傳 ErrInvalidCredentials
func AuthenticateUser(user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Issue 依據使用者資訊產生 JWT
func (s *TokenService) Issue(user model.User) (string, *Claims, error) {
	if len(s.Secret) == 0 {
		return "", nil, errors.New("token secret not set")
	}

	now := timeNow()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Verify 驗證簽章與期限，並確認 token 未被撤銷；快取錯誤時拒絕
func (s *TokenService) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	if len(s.Secret) == 0 {
		return nil, errors.New("token secret not set")
	}

	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(timeNow))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("invalid token: missing user id")
	}

	if claims.ID != "" && s.Revoked != nil {
		err := s.Revoked.Get(ctx, revokedKey(claims.ID)).Err()
		switch {
		case err == nil:
			return nil, ErrTokenRevoked
		case !cache.IsMiss(err):
			return nil, fmt.Errorf("check revocation: %w", err)
		}
	}

	return claims, nil
}

// Revoke 將 token ID 記入撤銷清單，保存到 token 原本的到期時間
func (s *TokenService) Revoke(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil || s.Revoked == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Time.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	return s.Revoked.Set(ctx, revokedKey(claims.ID), "1", ttl).Err()
}

func revokedKey(jti string) string {
	return "revoked:" + jti
}
