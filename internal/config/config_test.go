package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"profile_validator/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(":3000", cfg.HTTP.ListenAddress)
	rq.Equal(8*time.Second, cfg.Oracle.Timeout)
	rq.Equal("gpt-3.5-turbo", cfg.Oracle.OpenAIModel)
	rq.Equal("gemini-2.0-flash", cfg.Oracle.GeminiModel)
	rq.Equal(config.OracleLanguageTool, cfg.Oracle.ProviderName())
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("ORACLE_TIMEOUT", "3s")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(config.OracleGemini, cfg.Oracle.ProviderName())
	rq.Equal(3*time.Second, cfg.Oracle.Timeout)
	rq.Equal("secret", cfg.Oracle.GeminiAPIKey)
	rq.Equal(slog.LevelDebug, cfg.App.SlogLevel())
}

func TestOracleProviderName(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		provider string
		expected string
	}{
		{provider: "openai", expected: config.OracleOpenAI},
		{provider: " OpenAI ", expected: config.OracleOpenAI},
		{provider: "gemini", expected: config.OracleGemini},
		{provider: "languagetool", expected: config.OracleLanguageTool},
		{provider: "claude", expected: config.OracleLanguageTool},
		{provider: "", expected: config.OracleLanguageTool},
	}

	for _, tc := range testCases {
		t.Run(tc.provider, func(*testing.T) {
			rq.Equal(tc.expected, config.Oracle{Provider: tc.provider}.ProviderName())
		})
	}
}
