package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gifttax/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := slog.New(slog.NewJSONHandler(buf, nil))

	r := gin.New()
	r.Use(RequestLogger(base))
	r.GET("/x", OptionalAuth(secret), func(c *gin.Context) {
		logger.FromContext(c.Request.Context()).Info("handled")
		c.Status(http.StatusNoContent)
	})
	return r
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestRequestLoggerTagsRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	r := loggedRouter(&buf)

	token := signed(t, jwt.MapClaims{"sub": "u7", "role": "staff", "exp": time.Now().Add(time.Hour).Unix()}, secret)
	w := do(r, "Bearer "+token)
	require.Equal(t, http.StatusNoContent, w.Code)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "handled", entry["msg"])
	assert.Equal(t, "u7", entry["user_id"])
	assert.NotEmpty(t, entry["request_id"])
	assert.Equal(t, entry["request_id"], w.Header().Get(HeaderRequestID))
}

func TestRequestLoggerReusesIncomingID(t *testing.T) {
	var buf bytes.Buffer
	r := loggedRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
	assert.NotContains(t, entry, "user_id")
}
