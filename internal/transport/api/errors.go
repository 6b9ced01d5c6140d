package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/gin-gonic/gin"
)

// errorMapping соответствие вида ошибки HTTP статусу. Порядок важен: первая подходящая запись побеждает.
var errorMapping = []struct {
	target error
	status int
	kind   string
}{
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "Unauthenticated"},
	{domain.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{domain.ErrUserNotFound, http.StatusNotFound, "UserNotFound"},
	{domain.ErrServiceNotFound, http.StatusNotFound, "ServiceNotFound"},
	{domain.ErrInsufficientReferralBalance, http.StatusPaymentRequired, "InsufficientReferralBalance"},
	{domain.ErrInsufficientBalance, http.StatusPaymentRequired, "InsufficientBalance"},
	{domain.ErrAlreadyProcessed, http.StatusConflict, "AlreadyProcessed"},
	{domain.ErrProviderRejected, http.StatusUnprocessableEntity, "ProviderRejected"},
	{domain.ErrProviderUnavailable, http.StatusBadGateway, "ProviderUnavailable"},
	{domain.ErrBelowMinimum, http.StatusUnprocessableEntity, "BelowMinimum"},
	{domain.ErrInvalidRequest, http.StatusBadRequest, "InvalidRequest"},
	{domain.ErrRecordNotFound, http.StatusNotFound, "NotFound"},
	{domain.ErrDuplicateKey, http.StatusConflict, "AlreadyProcessed"},
}

// classify возвращает HTTP статус, вид ошибки и текст для клиента. Неизвестные ошибки не раскрываются.
func classify(err error) (int, string, string) {
	for _, m := range errorMapping {
		if !errors.Is(err, m.target) {
			continue
		}
		return m.status, m.kind, publicMessage(err, m.target)
	}
	return http.StatusInternalServerError, "Internal", ""
}

func publicMessage(err error, target error) string {
	var invalid *domain.InvalidRequestError
	if errors.As(err, &invalid) {
		return invalid.Error()
	}
	var rejected *domain.ProviderRejectedError
	if errors.As(err, &rejected) {
		return rejected.Message
	}
	return target.Error()
}

// abortWithError прерывает запрос с ошибкой сервисного слоя. Ответ формирует middlewares.Errors.
func abortWithError(c *gin.Context, err error) {
	status, kind, msg := classify(err)
	c.Status(status)
	_ = c.Error(err).SetType(gin.ErrorTypePrivate).SetMeta(kind)
	if msg != "" {
		_ = c.Error(errors.New(msg)).SetType(gin.ErrorTypePublic).SetMeta(kind)
	}
	c.Abort()
}

// abortWithBindError прерывает запрос с ошибкой разбора тела или параметров.
func abortWithBindError(c *gin.Context, err error) {
	c.Status(http.StatusBadRequest)
	_ = c.Error(err).SetType(gin.ErrorTypeBind).SetMeta("InvalidRequest")
	c.Abort()
}
