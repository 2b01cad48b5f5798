package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naya-blog/dto"
)

func TestBearerToken(t *testing.T) {
	testCases := []struct {
		header    string
		wantToken string
		wantErr   error
	}{
		{"", "", ErrMissingHeader},
		{"   ", "", ErrMissingHeader},
		{"Basic abc", "", ErrInvalidFormat},
		{"Bearer", "", ErrInvalidFormat},
		{"Bearer    ", "", ErrEmptyToken},
		{"bearer token-123", "token-123", nil},
		{"BEARER  padded ", "padded", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.header, func(t *testing.T) {
			token, err := BearerToken(tc.header)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantToken, token)
		})
	}
}

func TestExtractBearerTokenReadsHeader(t *testing.T) {
	c, _ := newTestGinContext("Bearer abc")
	token, err := ExtractBearerToken(c)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestAbortWithUnauthorized(t *testing.T) {
	testCases := []struct {
		name          string
		err           error
		wantChallenge string
	}{
		{"missing header", ErrMissingHeader, `Bearer realm="naya-blog"`},
		{"bad token", ErrInvalidToken, `Bearer realm="naya-blog", error="invalid_token"`},
		{"bad format", ErrInvalidFormat, `Bearer realm="naya-blog", error="invalid_token"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newTestGinContext("")
			AbortWithUnauthorized(c, tc.err)

			assert.True(t, c.IsAborted())
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tc.wantChallenge, w.Header().Get("WWW-Authenticate"))
			assert.Equal(t, tc.err.Error(), decodeError(t, w))
		})
	}
}

func TestAbortWithForbidden(t *testing.T) {
	c, w := newTestGinContext("Bearer x")
	AbortWithForbidden(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), `error="insufficient_scope"`)
	assert.Equal(t, "insufficient_scope", decodeError(t, w))
}

func newTestGinContext(authorization string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	c.Request = req
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}
