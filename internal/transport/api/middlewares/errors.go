package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusPaymentRequired:
		return "payment required"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusTooManyRequests:
		return "too many requests"
	case http.StatusBadGateway:
		return "bad gateway"
	default:
		return "internal server error"
	}
}

// Errors отдает ошибку запроса в виде {"error": "<вид>", "message": "<текст>"}. Вид берется из Meta ошибки.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// тело уже отдано хендлером, ошибки только для лога.
		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}

		// первая публичная ошибка идет клиенту как есть, иначе только текст статуса.
		firstErr := c.Errors[0]
		status := c.Writer.Status()

		msg := statusErrorText(status)
		if public := c.Errors.ByType(gin.ErrorTypePublic | gin.ErrorTypeBind); len(public) > 0 {
			firstErr = public[0]
			msg = firstErr.Error()
		}
		kind, ok := firstErr.Meta.(string)
		if !ok || kind == "" {
			kind = http.StatusText(status)
		}

		c.JSON(status, gin.H{"error": kind, "message": msg})
		c.Abort()
	}
}
