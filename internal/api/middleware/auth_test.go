package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidshare-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthEngine(tokens utils.TokenIssuer, reached *bool) *gin.Engine {
	r := gin.New()
	r.GET("/private", AuthRequired(tokens), func(c *gin.Context) {
		*reached = true
		id, _ := GetCurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAuthRequired(t *testing.T) {
	tokens := utils.NewTokenManager("s3cr3t", time.Hour, "test")
	valid, err := tokens.GenerateToken(42)
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
		wantReached bool
	}{
		{"missing header", "", http.StatusUnauthorized, "No token provided", false},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "No token provided", false},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized, "Invalid token", false},
		{"valid token", "Bearer " + valid, http.StatusOK, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			r := newAuthEngine(tokens, &reached)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReached, reached)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	tokens := utils.NewTokenManager("s3cr3t", time.Hour, "test")
	valid, err := tokens.GenerateToken(7)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/public", OptionalAuth(tokens), func(c *gin.Context) {
		id, ok := GetCurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok})
	})

	for header, want := range map[string]string{
		"":                `{"id":0,"ok":false}`,
		"Bearer garbage":  `{"id":0,"ok":false}`,
		"Bearer " + valid: `{"id":7,"ok":true}`,
	} {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, want, rec.Body.String())
	}
}
