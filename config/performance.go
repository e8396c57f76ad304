package config

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PerformanceLogger logs every request with its latency and flags the
// slow ones.
func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": latency,
		}

		if latency > 200*time.Millisecond {
			logrus.WithFields(fields).Warn("slow request")
			return
		}
		logrus.WithFields(fields).Info("request")
	}
}
