package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"naya-blog/dto"
)

// 오류 문자열은 응답 본문과 WWW-Authenticate error 값에 그대로 쓰인다.
var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
	ErrInvalidToken  = errors.New("invalid_token")
	ErrForbidden     = errors.New("insufficient_scope")
)

const realm = "naya-blog"

// BearerToken 은 Authorization 헤더 값에서 토큰을 꺼낸다. scheme 은 대소문자를 구분하지 않는다.
func BearerToken(header string) (string, error) {
	header = strings.TrimLeft(header, " \t")
	if strings.TrimSpace(header) == "" {
		return "", ErrMissingHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidFormat
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

func ExtractBearerToken(c *gin.Context) (string, error) {
	return BearerToken(c.GetHeader("Authorization"))
}

// AbortWithUnauthorized 는 401 과 Bearer challenge 를 응답한다.
// 헤더가 아예 없으면 error 파라미터 없이 realm 만 보낸다 (RFC 6750 3.1).
func AbortWithUnauthorized(c *gin.Context, err error) {
	challenge := fmt.Sprintf("Bearer realm=%q", realm)
	if !errors.Is(err, ErrMissingHeader) {
		challenge += fmt.Sprintf(", error=%q", ErrInvalidToken.Error())
	}
	c.Header("WWW-Authenticate", challenge)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: err.Error()})
}

func AbortWithForbidden(c *gin.Context) {
	c.Header("WWW-Authenticate", fmt.Sprintf("Bearer realm=%q, error=%q", realm, ErrForbidden.Error()))
	c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponseDTO{Error: ErrForbidden.Error()})
}
