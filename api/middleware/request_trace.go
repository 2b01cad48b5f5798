package middleware

import (
	"github.com/gin-gonic/gin"

	"naya-blog/trace"
)

const headerRequestID = "X-Request-Id"

const ctxKeyRequestID = "request_id"

// RequestTrace는 모든 inbound HTTP 요청에 대해 Request ID를 보장하고,
// 이를 컨텍스트/응답 헤더에 저장한다. 이벤트와 로그는 같은 ID를 사용한다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" || len(requestID) > 128 {
			requestID = trace.GenerateID()
		}

		c.Request = c.Request.WithContext(trace.WithRequestID(c.Request.Context(), requestID))
		c.Set(ctxKeyRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()
	}
}
