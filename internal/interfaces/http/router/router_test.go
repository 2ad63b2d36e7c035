package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-story-api/internal/application/story"
	"carbon-story-api/internal/config"
	"carbon-story-api/internal/domain/entity"
	"carbon-story-api/internal/interfaces/http/dto"
	"carbon-story-api/internal/interfaces/http/handler"
	"carbon-story-api/internal/interfaces/http/middleware"
	apperrors "carbon-story-api/pkg/errors"
)

type stubScenario struct{ calls int }

func (s *stubScenario) Prologue(context.Context, *story.PrologueInput) (*entity.ScenarioResult, error) {
	s.calls++
	return &entity.ScenarioResult{Scenario: "서막", Composition: "close-up shot"}, nil
}

func (s *stubScenario) Ending(context.Context, *story.EndingInput) (*entity.ScenarioResult, error) {
	s.calls++
	return &entity.ScenarioResult{Scenario: "결말", Composition: "wide shot"}, nil
}

type stubImage struct{}

func (stubImage) Generate(context.Context, *story.ImagePromptInput) (string, error) {
	return "a prompt", nil
}

func (stubImage) Render(context.Context, *entity.ImageRequest) (string, error) {
	return "data:image/png;base64,AA==", nil
}

type configured bool

func (c configured) Configured() bool { return bool(c) }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "carbon-story-api"
	cfg.App.Env = "test"
	cfg.Server.HTTP.Port = 8080
	cfg.Server.HTTP.MaxBodyBytes = 1 << 20
	cfg.Observability.Metrics.Enabled = true
	cfg.Observability.Metrics.Path = "/metrics"
	return cfg
}

func newTestRouter(t *testing.T, cfg *config.Config) (*Router, *stubScenario) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	scenario := &stubScenario{}
	r := NewWithDeps(cfg, RouterHandlers{
		Health:   handler.NewHealthHandler("test", configured(true), configured(true)),
		Scenario: handler.NewScenarioHandler(scenario),
		Image:    handler.NewImageHandler(stubImage{}, stubImage{}),
	})
	return r, scenario
}

func serve(r *Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRouter_APIHealth(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := serve(r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_ProbeRoutes(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_ScenarioRoute(t *testing.T) {
	r, scenario := newTestRouter(t, testConfig())

	body := `{"coreTheme":"탄소 위기","characterProfile":{"gender":"female","age":"20s"},"background":{"space":"city"}}`
	w := serve(r, http.MethodPost, "/api/scenario/prologue", body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"scenario":"서막","composition":"close-up shot"}`, w.Body.String())
	assert.Equal(t, 1, scenario.calls)
}

func TestRouter_MetricsRoute(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())
	serve(r, http.MethodGet, "/api/unknown", "")

	w := serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "carbon_story_http_requests_total")
}

func TestRouter_MetricsRouteOnSeparatePort(t *testing.T) {
	cfg := testConfig()
	cfg.Observability.Metrics.Port = 9090
	r, _ := newTestRouter(t, cfg)

	w := serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_NotFoundJSON(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	w := serve(r, http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperrors.CodeNotFound, decodeError(t, w).Code)
}

func TestRouter_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>carbon</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	cfg := testConfig()
	cfg.Server.HTTP.StaticDir = dir
	r, _ := newTestRouter(t, cfg)

	w := serve(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "carbon")

	w = serve(r, http.MethodGet, "/app.js", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")

	w = serve(r, http.MethodGet, "/missing.css", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// /api 前缀不回落到静态资源
	w = serve(r, http.MethodGet, "/api/index.html", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperrors.CodeNotFound, decodeError(t, w).Code)
}

func TestRouter_BodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.HTTP.MaxBodyBytes = 64
	r, scenario := newTestRouter(t, cfg)

	body := `{"coreTheme":"` + strings.Repeat("x", 256) + `","characterProfile":{"gender":"male"},"background":{"space":"city"}}`
	w := serve(r, http.MethodPost, "/api/scenario/prologue", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperrors.CodeInvalidParam, decodeError(t, w).Code)
	assert.Zero(t, scenario.calls)
}
