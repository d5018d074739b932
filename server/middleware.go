package server

import (
	"time"

	"github.com/gin-gonic/gin"
)

// observe logs and counts every request by its route template.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		s.metrics.RecordHTTPRequest(c.Request.Method, route, status, elapsed)

		attrs := []any{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"elapsed", elapsed,
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}
		if status >= 500 {
			s.log.Error("http request", attrs...)
			return
		}
		s.log.Debug("http request", attrs...)
	}
}
