// Package tokens проверка bearer токенов и получение domain.Identity.
package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")

type UserClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Admin bool   `json:"admin,omitempty"`
}

// GenerateUserJWT выпускает HS256 токен для identity. Id юзера хранится в subject.
func GenerateUserJWT(identity domain.Identity, expire time.Duration, key []byte) (string, error) {
	userClaims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		Email: identity.Email,
		Admin: identity.IsAdmin,
	}
	token, err := generateJWT(userClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateUserJWT(tokenString string, key []byte) (*UserClaims, error) {
	token, err := validateJWT(tokenString, new(UserClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating user jwt token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if claims.Subject == "" {
		return nil, errors.New("token without subject")
	}
	return claims, nil
}

// JWTVerifier проверяет токены, подписанные общим секретом.
type JWTVerifier struct {
	key []byte
}

func NewJWTVerifier(key []byte) *JWTVerifier {
	return &JWTVerifier{key: key}
}

// Verify любая ошибка проверки оборачивает domain.ErrUnauthenticated.
func (v *JWTVerifier) Verify(_ context.Context, token string) (*domain.Identity, error) {
	claims, err := ValidateUserJWT(token, v.key)
	if err != nil {
		return nil, errors.Join(domain.ErrUnauthenticated, err)
	}
	return &domain.Identity{
		UserID:  claims.Subject,
		Email:   claims.Email,
		IsAdmin: claims.Admin,
	}, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
