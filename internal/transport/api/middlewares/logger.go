package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос: метод, путь, статус, длительность и клиента. Приватные ошибки
// обработчиков попадают в лог, но не в ответ.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithFields(logrus.Fields{
		"component": "api",
		"module":    "http",
	})
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     path,
			"route":    c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"clientIP": c.ClientIP(),
		}
		if subject, ok := c.Get(CurrentSubjectKey); ok {
			fields["subject"] = subject
		}

		requestLog := entry.WithFields(fields)
		if len(c.Errors) > 0 {
			requestLog = requestLog.WithField("errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			requestLog.Error("request")
		case status >= 400:
			requestLog.Warn("request")
		default:
			requestLog.Info("request")
		}
	}
}
