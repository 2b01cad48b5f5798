package middleware

import (
	"github.com/gin-gonic/gin"

	"naya-blog/auth"
	"naya-blog/config"
)

// TokenParser returns (subject, role) of a verified token. *auth.JWTManager implements it.
type TokenParser interface {
	Parse(token string) (string, string, error)
}

// AdminAuth 는 요청 헤더의 JWT를 검증하고, role이 'admin'인지 확인합니다.
func AdminAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		subject, role, err := parser.Parse(token)
		if err != nil {
			config.Logger.Warnf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, auth.ErrInvalidToken)
			return
		}

		if role != auth.RoleAdmin {
			config.Logger.Warnf("access denied: %s has role %q, want admin", subject, role)
			auth.AbortWithForbidden(c)
			return
		}

		// 컨텍스트에 사용자 정보 저장
		c.Set("subject", subject)
		c.Set("role", role)

		c.Next()
	}
}
