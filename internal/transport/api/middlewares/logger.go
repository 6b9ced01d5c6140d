package middlewares

import (
	"time"

	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет строку лога на каждый запрос и считает HTTP метрики по шаблону роута.
func Logger(l *logrus.Logger, m *metrics.Metrics) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "http",
		"module":    "router",
	})
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		m.HTTPRequest(c.Request.Method, route, status, latency)

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   status,
			"latency":  latency,
			"clientIP": c.ClientIP(),
		}
		if identity, ok := CurrentIdentity(c); ok {
			fields["userID"] = identity.UserID
		}
		log := entry.WithFields(fields)

		switch {
		case len(c.Errors) > 0 && status >= 500:
			log.WithField("errors", c.Errors.String()).Error("request failed")
		case len(c.Errors) > 0:
			log.WithField("errors", c.Errors.String()).Info("request rejected")
		default:
			log.Debug("request")
		}
	}
}
