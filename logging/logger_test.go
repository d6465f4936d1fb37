package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reminder-app/reminder/config"
)

func TestNewWithWriter_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.EnvProduction, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("user", "alice").Msg("visible")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visible", line["message"])
	assert.Equal(t, "alice", line["user"])
	assert.Contains(t, line, "timestamp")
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := NewWithWriter(config.EnvProduction, &buf)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "/ping", line["path"])
	assert.Equal(t, float64(200), line["status"])
}
