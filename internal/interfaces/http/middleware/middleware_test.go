package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-story-api/pkg/errors"
	"carbon-story-api/pkg/logger"
	"carbon-story-api/pkg/metrics"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(mw...)
	return e
}

func TestRequestID(t *testing.T) {
	e := newEngine(RequestID())
	e.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	tests := []struct {
		name     string
		header   string
		passthru bool
	}{
		{"生成新 ID", "", false},
		{"透传合法 ID", "req-123", true},
		{"包含空白", "bad id", false},
		{"超长", strings.Repeat("a", maxRequestIDLength+1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, w.Body.String())
			if tt.passthru {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	e := newEngine(Recovery())
	e.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["error"])
	assert.Equal(t, string(errors.CodeInternalError), body["code"])
}

func TestMetrics_Labels(t *testing.T) {
	e := newEngine(Metrics("/skip"))
	e.GET("/items", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	e.GET("/skip", func(c *gin.Context) { c.Status(http.StatusOK) })

	matched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items", "204")
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedPath, "404")
	skipped := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/skip", "200")
	beforeMatched := testutil.ToFloat64(matched)
	beforeUnmatched := testutil.ToFloat64(unmatched)
	beforeSkipped := testutil.ToFloat64(skipped)

	for _, path := range []string{"/items", "/nowhere/abc", "/skip"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, beforeMatched+1, testutil.ToFloat64(matched))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
	assert.Equal(t, beforeSkipped, testutil.ToFloat64(skipped))
}

func TestCORS_Preflight(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		allowed string
	}{
		{"默认放开", nil, "https://play.example.com", "*"},
		{"通配符", []string{"*"}, "https://play.example.com", "*"},
		{"白名单命中", []string{"https://play.example.com"}, "https://play.example.com", "https://play.example.com"},
		{"白名单未命中", []string{"https://play.example.com"}, "https://evil.example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(CORS(CORSConfig{AllowedOrigins: tt.origins}))
			e.POST("/api/image", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodOptions, "/api/image", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, req)

			assert.Equal(t, tt.allowed, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestBodyLimit(t *testing.T) {
	e := newEngine(BodyLimit(8))
	e.POST("/echo", func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"k":"v"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	e = newEngine(BodyLimit(64))
	e.POST("/echo", func(c *gin.Context) {
		var body map[string]string
		require.NoError(t, c.ShouldBindJSON(&body))
		c.Status(http.StatusOK)
	})
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"k":"v"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAudit(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "info", "json")
	t.Cleanup(func() { logger.Init("info", "json") })

	e := newEngine(RequestID(), AuditWithConfig(AuditConfig{Enabled: true, SkipPaths: DefaultAuditSkipPaths}))
	e.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	e.POST("/api/image", func(c *gin.Context) {
		c.Set(ErrorCodeKey, "5006")
		c.Status(http.StatusBadGateway)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Zero(t, buf.Len())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/image", nil))
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "api audit", line["msg"])
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "/api/image", line["path"])
	assert.Equal(t, "5006", line["error_code"])
	assert.NotEmpty(t, line["request_id"])
}
