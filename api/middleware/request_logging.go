package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"naya-blog/config"
)

// RequestLogging 은 요청 진입부터 응답까지 걸린 시간을 로깅한다.
// RequestTrace 다음에 등록해야 request_id 가 채워진다.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		fields := config.Fields{
			"method":      method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  c.GetString(ctxKeyRequestID),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields["query"] = q
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		if c.Writer.Status() >= 500 {
			config.ErrorWithFields("api_request", fields)
			return
		}
		config.InfoWithFields("api_request", fields)
	}
}
