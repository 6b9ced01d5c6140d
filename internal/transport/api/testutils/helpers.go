package testutils

import (
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/service/tokens"
	"github.com/stretchr/testify/require"
)

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}

// BearerToken выпускает токен на час для identity.
func BearerToken(t *testing.T, identity domain.Identity, secret []byte) string {
	t.Helper()

	token, err := tokens.GenerateUserJWT(identity, time.Hour, secret)
	require.NoError(t, err)
	return token
}

func WithBearer(token string) func(*RequestOptions) {
	return WithHeader("Authorization", "Bearer "+token)
}
