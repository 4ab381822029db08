package middleware

import (
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRequestIDEchoesInboundHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/api/v1/share/some-token", nil)
	c.Request.Header.Set("X-Request-Id", "caller-supplied-id")

	RequestID()(c)

	require.Equal(t, "caller-supplied-id", recorder.Header().Get("X-Request-Id"))
	value, ok := c.Get(ContextRequestIDKey)
	require.True(t, ok)
	require.Equal(t, "caller-supplied-id", value)
}

func TestRequestIDMintsWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/api/v1/share/some-token", nil)

	RequestID()(c)

	reqID := recorder.Header().Get("X-Request-Id")
	require.NotEmpty(t, reqID)
	require.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_-]+$`), reqID)
}

func TestCORSAllowlist(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := CORS([]string{"https://notes.example.com"})

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/api/v1/share/some-token", nil)
	c.Request.Header.Set("Origin", "https://notes.example.com")
	mw(c)
	require.Equal(t, "https://notes.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "Origin", recorder.Header().Get("Vary"))

	recorder = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/api/v1/share/some-token", nil)
	c.Request.Header.Set("Origin", "https://evil.example.com")
	mw(c)
	require.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSEmptyAllowlistAdmitsAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("OPTIONS", "/api/v1/share", nil)
	CORS(nil)(c)
	require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, 204, recorder.Code)
	require.True(t, c.IsAborted())
}
