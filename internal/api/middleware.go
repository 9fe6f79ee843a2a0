package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/concave-dev/ingest/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// loggingMiddleware provides request logging. Health checks, metric scrapes
// and status polls are logged at DEBUG so they don't drown out submissions.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		format := "%s - [%s] \"%s %s %s %d %s \"%s\" %s\""
		args := []any{
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		}

		if isQuietPath(param.Method, param.Path) && param.StatusCode < http.StatusBadRequest {
			logging.Debug(format, args...)
		} else {
			logging.Info(format, args...)
		}
		return ""
	})
}

func isQuietPath(method, path string) bool {
	if method != http.MethodGet {
		return false
	}
	return path == "/metrics" ||
		strings.HasSuffix(path, "/health") ||
		strings.Contains(path, "/status/")
}

// corsMiddleware allows cross-origin access from any origin so browser
// dashboards can submit and poll directly.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Accept", "Authorization", "Content-Type"},
		MaxAge:          5 * time.Minute,
	})
}
