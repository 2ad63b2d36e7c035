package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("STORY_TEST_KEY", "secret")

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"SetVariable", "key: ${STORY_TEST_KEY}", "key: secret"},
		{"SetVariableIgnoresDefault", "key: ${STORY_TEST_KEY:fallback}", "key: secret"},
		{"UnsetWithDefault", "model: ${STORY_TEST_UNSET:gemini-2.5-flash}", "model: gemini-2.5-flash"},
		{"DefaultWithColons", "url: ${STORY_TEST_UNSET:https://example.com/v1}", "url: https://example.com/v1"},
		{"UnsetWithoutDefault", "key: ${STORY_TEST_UNSET}", "key: "},
		{"NoPlaceholder", "plain: value", "plain: value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, expandEnv(tc.in))
		})
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  http:
    port: ${STORY_TEST_PORT:9090}
llm:
  default_provider: gemini
  providers:
    gemini:
      api_key: ${STORY_TEST_API_KEY}
      model: ${STORY_TEST_TEXT_MODEL:gemini-2.5-flash}
      timeout: 45s
image:
  api_key: ${STORY_TEST_API_KEY}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	t.Run("DefaultsAndMissingCredential", func(t *testing.T) {
		cfg, err := LoadFrom(dir)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.HTTP.Port)
		assert.Equal(t, "carbon-story-api", cfg.App.Name)
		assert.Equal(t, int64(20<<20), cfg.Server.HTTP.MaxBodyBytes)
		assert.Equal(t, "gemini-2.5-flash-image", cfg.Image.Model)
		assert.Equal(t, "gemini-3-pro-image-preview", cfg.Image.ModelFor(true))
		assert.Equal(t, "gemini-2.5-flash-image", cfg.Image.ModelFor(false))
		assert.Equal(t, 45*time.Second, cfg.LLM.Providers["gemini"].Timeout)
		assert.False(t, cfg.LLM.Providers["gemini"].Configured())
		assert.False(t, cfg.Image.Configured())
		assert.InDelta(t, 0.8, cfg.Story.ScenarioTemperature, 1e-9)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("STORY_TEST_API_KEY", "k-123")
		t.Setenv("STORY_TEST_TEXT_MODEL", "gemini-2.5-pro")

		cfg, err := LoadFrom(dir)
		require.NoError(t, err)
		assert.True(t, cfg.Image.Configured())
		assert.Equal(t, "k-123", cfg.LLM.Providers["gemini"].APIKey)
		assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Providers["gemini"].Model)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadFrom(filepath.Join(dir, "nope"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{HTTP: HTTPServerConfig{Port: 8080}},
			LLM: LLMConfig{
				DefaultProvider: "gemini",
				Providers:       map[string]ProviderConfig{"gemini": {}},
			},
			Image: ImageConfig{Model: "gemini-2.5-flash-image"},
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.LLM.DefaultProvider = "openai"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Server.HTTP.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Image.Model = ""
	assert.Error(t, cfg.Validate())
}

func TestSeparateMetricsServer(t *testing.T) {
	cfg := &Config{}
	cfg.Server.HTTP.Port = 8080
	cfg.Observability.Metrics = MetricsConfig{Enabled: true, Port: 9464}
	assert.True(t, cfg.SeparateMetricsServer())

	cfg.Observability.Metrics.Port = 8080
	assert.False(t, cfg.SeparateMetricsServer())

	cfg.Observability.Metrics = MetricsConfig{Enabled: false, Port: 9464}
	assert.False(t, cfg.SeparateMetricsServer())
}
