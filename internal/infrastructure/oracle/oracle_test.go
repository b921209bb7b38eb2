package oracle_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"profile_validator/internal/config"
	"profile_validator/internal/domain"
	"profile_validator/internal/domain/entity"
	"profile_validator/internal/infrastructure/oracle"
	"profile_validator/pkg/errcodes"
)

type oracleCall struct {
	provider string
	status   string
}

type metricsRecorder struct {
	calls []oracleCall
}

func (m *metricsRecorder) ObserveOracleCall(provider, status string, _ time.Duration) {
	m.calls = append(m.calls, oracleCall{provider: provider, status: status})
}

func newChecker(provider entity.Provider, analysis entity.Analysis, err error) *oracle.CheckerMock {
	return &oracle.CheckerMock{
		ProviderFunc: func() entity.Provider {
			return provider
		},
		CheckFunc: func(context.Context, string) (entity.Analysis, error) {
			return analysis, err
		},
	}
}

func TestAnalyzerAnalyze(t *testing.T) {
	rq := require.New(t)

	const bio = "Backend engineer focused on payments."

	languageToolOK := entity.Analysis{Success: true, Provider: entity.ProviderLanguageTool, Score: 9}
	openAIOK := entity.Analysis{Success: true, Provider: entity.ProviderOpenAI, Score: 8}
	errDown := domain.NewError(errcodes.OracleUnavailable, "OpenAI request failed")
	errFallbackDown := domain.NewError(errcodes.OracleUnavailable, "LanguageTool request failed")

	testCases := []struct {
		name          string
		text          string
		primary       *oracle.CheckerMock
		fallback      *oracle.CheckerMock
		expected      entity.Analysis
		primaryCalls  int
		fallbackCalls int
		metrics       []oracleCall
	}{
		{
			name:          "Primary succeeds",
			text:          bio,
			primary:       newChecker(entity.ProviderOpenAI, openAIOK, nil),
			fallback:      newChecker(entity.ProviderLanguageTool, languageToolOK, nil),
			expected:      openAIOK,
			primaryCalls:  1,
			fallbackCalls: 0,
			metrics:       []oracleCall{{"OpenAI", "success"}},
		},
		{
			name:          "Falls back once",
			text:          bio,
			primary:       newChecker(entity.ProviderOpenAI, entity.Analysis{}, errDown),
			fallback:      newChecker(entity.ProviderLanguageTool, languageToolOK, nil),
			expected:      languageToolOK,
			primaryCalls:  1,
			fallbackCalls: 1,
			metrics:       []oracleCall{{"OpenAI", "error"}, {"LanguageTool", "success"}},
		},
		{
			name:          "Fallback fails too",
			text:          bio,
			primary:       newChecker(entity.ProviderOpenAI, entity.Analysis{}, errDown),
			fallback:      newChecker(entity.ProviderLanguageTool, entity.Analysis{}, errFallbackDown),
			expected:      entity.Analysis{Success: false, Error: "LanguageTool request failed"},
			primaryCalls:  1,
			fallbackCalls: 1,
			metrics:       []oracleCall{{"OpenAI", "error"}, {"LanguageTool", "error"}},
		},
		{
			name:          "Default provider is not retried",
			text:          bio,
			primary:       newChecker(entity.ProviderLanguageTool, entity.Analysis{}, errors.New("connection refused")),
			fallback:      newChecker(entity.ProviderLanguageTool, languageToolOK, nil),
			expected:      entity.Analysis{Success: false, Error: "LanguageTool.Check: connection refused"},
			primaryCalls:  1,
			fallbackCalls: 0,
			metrics:       []oracleCall{{"LanguageTool", "error"}},
		},
		{
			name:          "Text too short",
			text:          "  Go dev.  ",
			primary:       newChecker(entity.ProviderOpenAI, openAIOK, nil),
			fallback:      newChecker(entity.ProviderLanguageTool, languageToolOK, nil),
			expected:      entity.Analysis{Success: false, Error: "Text too short for AI analysis"},
			primaryCalls:  0,
			fallbackCalls: 0,
			metrics:       nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			recorder := &metricsRecorder{}

			analyzer := oracle.NewAnalyzer(tc.primary, tc.fallback, time.Second).WithMetrics(recorder)

			analysis := analyzer.Analyze(context.Background(), tc.text)

			rq.Equal(tc.expected, analysis)
			rq.Len(tc.primary.CheckCalls(), tc.primaryCalls)
			rq.Len(tc.fallback.CheckCalls(), tc.fallbackCalls)
			rq.Equal(tc.metrics, recorder.calls)
		})
	}
}

func TestAnalyzerTimeout(t *testing.T) {
	rq := require.New(t)

	slow := &oracle.CheckerMock{
		ProviderFunc: func() entity.Provider {
			return entity.ProviderLanguageTool
		},
		CheckFunc: func(ctx context.Context, _ string) (entity.Analysis, error) {
			<-ctx.Done()
			return entity.Analysis{}, ctx.Err()
		},
	}

	start := time.Now()
	analysis := oracle.NewAnalyzer(slow, nil, 50*time.Millisecond).
		Analyze(context.Background(), "Backend engineer focused on payments.")

	rq.False(analysis.Success)
	rq.Contains(analysis.Error, context.DeadlineExceeded.Error())
	rq.Less(time.Since(start), 5*time.Second)
}

func TestNew(t *testing.T) {
	rq := require.New(t)

	languageTool := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"matches":[]}`) //nolint:errcheck
	}))
	defer languageTool.Close()

	testCases := []struct {
		name     string
		cfg      config.Oracle
		status   entity.OracleStatus
		provider entity.Provider
	}{
		{
			name: "LanguageTool by default",
			cfg: config.Oracle{
				Timeout:         time.Second,
				LanguageToolURL: languageTool.URL,
			},
			status:   entity.OracleStatus{CurrentProvider: "languagetool", LanguageTool: true},
			provider: entity.ProviderLanguageTool,
		},
		{
			// no key, so the call falls back to LanguageTool
			name: "Gemini without key",
			cfg: config.Oracle{
				Provider:        "gemini",
				Timeout:         time.Second,
				LanguageToolURL: languageTool.URL,
				OpenAIAPIKey:    "sk-test",
			},
			status:   entity.OracleStatus{CurrentProvider: "gemini", LanguageTool: true, OpenAI: true},
			provider: entity.ProviderLanguageTool,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			analyzer := oracle.New(tc.cfg)

			rq.Equal(tc.status, analyzer.Status())

			analysis := analyzer.Analyze(context.Background(), wellWrittenBio)

			rq.True(analysis.Success)
			rq.Equal(tc.provider, analysis.Provider)
			rq.Equal(10, analysis.Score)
		})
	}
}
