package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "middleware-secret"
	testIssuer = "household"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(buf *bytes.Buffer, handlers ...gin.HandlerFunc) *gin.Engine {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/protected", handlers...)
	return r
}

func whoAmI(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("handled")
	c.String(http.StatusOK, userID)
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT("user-42", testSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("user-42", testSecret, -time.Hour, testIssuer)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("user-42", testSecret, time.Hour, "elsewhere")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "user-42"},
		{name: "lowercase scheme", header: "bearer " + valid, wantStatus: http.StatusOK, wantBody: "user-42"},
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "foreign issuer", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "garbage", header: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := newRouter(&buf, middleware.AuthMiddleware(testSecret, testIssuer), whoAmI)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestStructuredLoggingMiddleware_EnrichesLogger(t *testing.T) {
	token, err := utils.GenerateJWT("user-7", testSecret, time.Hour, "")
	require.NoError(t, err)
	var buf bytes.Buffer
	r := newRouter(&buf, middleware.AuthMiddleware(testSecret, ""), whoAmI)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", "req-fixed")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-fixed", w.Header().Get("X-Request-ID"))
	logs := buf.String()
	assert.Contains(t, logs, `"request_id":"req-fixed"`)
	assert.Contains(t, logs, `"user_id":"user-7"`)
	assert.Contains(t, logs, `"msg":"Request completed"`)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Equal(t, custom, middleware.GetLoggerFromCtx(middleware.WithLogger(context.Background(), custom)))
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewLimiter("2-M")
	require.NoError(t, err)
	var buf bytes.Buffer
	r := newRouter(&buf, middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestNewLimiter_RejectsBadRate(t *testing.T) {
	_, err := middleware.NewLimiter("lots")
	assert.Error(t, err)
}
