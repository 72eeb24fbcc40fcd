package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIP(t *testing.T) {
	a := hashIP("203.0.113.7", "salt-one")
	assert.Len(t, a, 16)
	assert.Equal(t, a, hashIP("203.0.113.7", "salt-one"))
	assert.NotEqual(t, a, hashIP("203.0.113.7", "salt-two"))
	assert.NotEqual(t, a, hashIP("203.0.113.8", "salt-one"))
}

func TestNewSalt(t *testing.T) {
	s1, err := newSalt()
	require.NoError(t, err)
	s2, err := newSalt()
	require.NoError(t, err)

	assert.Len(t, s1, 64)
	assert.NotEqual(t, s1, s2)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := gin.New()
	engine.Use(requestLogger(logger, "salt"))
	engine.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	engine.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve := func(path string) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "198.51.100.23:4242"
		engine.ServeHTTP(httptest.NewRecorder(), req)
	}

	serve("/ok")
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "path=/ok")
	assert.Contains(t, out, "client="+hashIP("198.51.100.23", "salt"))
	assert.NotContains(t, out, "198.51.100.23")

	buf.Reset()
	serve("/missing")
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	serve("/healthz")
	assert.Empty(t, buf.String())
}
