package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"naya-blog/config"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	defaultIssuer = "naya-blog"
	defaultTTL    = 24 * time.Hour
)

var ErrMissingSubject = errors.New("token missing sub claim")

// Claims 는 관리자 토큰의 페이로드다. role 이 없으면 빈 문자열로 남는다.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager 는 HS256 공유 시크릿으로 토큰을 검증한다.
// 이 서비스는 토큰을 발급하지 않으며 Sign 은 운영 도구와 테스트용이다.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

// NewJWTManager 는 auth.jwt_secret(필수), jwt_issuer, jwt_ttl 로 JWTManager 를 만든다.
func NewJWTManager(cfg config.AuthConfig) (*JWTManager, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	m := &JWTManager{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		ttl:    cfg.JWTTTL,
	}
	if m.issuer == "" {
		m.issuer = defaultIssuer
	}
	if m.ttl <= 0 {
		m.ttl = defaultTTL
	}
	return m.withParser(), nil
}

func (m *JWTManager) withParser() *JWTManager {
	m.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	return m
}

func (m *JWTManager) Sign(subject, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse 는 서명, 만료, issuer 를 검증하고 (sub, role) 을 반환한다.
func (m *JWTManager) Parse(tokenString string) (string, string, error) {
	var claims Claims
	if _, err := m.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return "", "", err
	}
	if claims.Subject == "" {
		return "", "", ErrMissingSubject
	}
	return claims.Subject, claims.Role, nil
}
