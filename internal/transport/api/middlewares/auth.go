package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

// CurrentIdentityKey ключ контекста gin, под которым лежит domain.Identity текущего юзера.
const CurrentIdentityKey = "currentIdentity"

// TokenVerifier проверяет bearer токен. Реализации: tokens.JWTVerifier и tokens.FirebaseVerifier.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// bearerToken извлекает токен из заголовка Authorization. Если токен не передан, вернется ErrTokenNotExist.
func bearerToken(c *gin.Context) (string, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) <= len(bearer) || !strings.EqualFold(tokenHeader[:len(bearer)], bearer) {
		return "", ErrTokenNotExist
	}
	return strings.TrimSpace(tokenHeader[len(bearer):]), nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст (поле CurrentIdentityKey)
// domain.Identity юзера.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err == nil {
			var identity *domain.Identity
			identity, err = verifier.Verify(c, token)
			if err == nil {
				c.Set(CurrentIdentityKey, *identity)
				c.Next()
				return
			}
		}

		if !errors.Is(err, ErrTokenNotExist) {
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":   "Unauthenticated",
			"message": "missing or invalid bearer token",
		})
	}
}

// AdminRequired пропускает только администраторов. Должен стоять после AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok || !identity.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "admin access required",
			})
			return
		}
		c.Next()
	}
}

// CurrentIdentity возвращает identity, установленную AuthRequired.
func CurrentIdentity(c *gin.Context) (domain.Identity, bool) {
	v, exist := c.Get(CurrentIdentityKey)
	if !exist {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
