// Package oracle talks to third-party text-quality services (LanguageTool,
// OpenAI, Gemini) and normalizes their answers into entity.Analysis.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"profile_validator/internal/config"
	"profile_validator/internal/domain"
	"profile_validator/internal/domain/entity"
	"profile_validator/pkg/contextx"
	"profile_validator/pkg/logx"
)

const (
	minTextLength = 10

	statusSuccess = "success"
	statusError   = "error"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Checker is a single text-quality backend.
//
//go:generate moq -rm -out checker_mock.gen.go . Checker:CheckerMock
type Checker interface {
	Provider() entity.Provider
	Check(ctx context.Context, text string) (entity.Analysis, error)
}

type metrics interface {
	ObserveOracleCall(provider string, status string, duration time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) ObserveOracleCall(string, string, time.Duration) {}

// Analyzer asks the configured backend first and, when it fails, retries once
// with the fallback backend. It never returns an error: failures are reported
// through Analysis.Success and Analysis.Error.
type Analyzer struct {
	primary  Checker
	fallback Checker
	timeout  time.Duration
	status   entity.OracleStatus
	metrics  metrics
}

func NewAnalyzer(primary, fallback Checker, timeout time.Duration) Analyzer {
	return Analyzer{
		primary:  primary,
		fallback: fallback,
		timeout:  timeout,
		status: entity.OracleStatus{
			CurrentProvider: strings.ToLower(primary.Provider().String()),
			LanguageTool:    true,
			OpenAI:          primary.Provider() == entity.ProviderOpenAI,
			Gemini:          primary.Provider() == entity.ProviderGemini,
		},
		metrics: nopMetrics{},
	}
}

// New builds the Analyzer described by cfg. LanguageTool is always the
// fallback backend.
func New(cfg config.Oracle) Analyzer {
	languageTool := NewLanguageTool(newHTTPClient(entity.ProviderLanguageTool, cfg), cfg.LanguageToolURL)

	var primary Checker = languageTool

	switch cfg.ProviderName() {
	case config.OracleOpenAI:
		primary = NewOpenAI(newHTTPClient(entity.ProviderOpenAI, cfg), cfg.OpenAIURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case config.OracleGemini:
		primary = NewGemini(newHTTPClient(entity.ProviderGemini, cfg), cfg.GeminiURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	analyzer := NewAnalyzer(primary, languageTool, cfg.Timeout)
	analyzer.status = entity.OracleStatus{
		CurrentProvider: cfg.ProviderName(),
		LanguageTool:    true,
		OpenAI:          cfg.OpenAIAPIKey != "",
		Gemini:          cfg.GeminiAPIKey != "",
	}

	return analyzer
}

func (a Analyzer) WithMetrics(m metrics) Analyzer {
	a.metrics = m
	return a
}

func (a Analyzer) Status() entity.OracleStatus {
	return a.status
}

func (a Analyzer) Analyze(ctx context.Context, text string) entity.Analysis {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextLength {
		return entity.Analysis{Success: false, Error: "Text too short for AI analysis"}
	}

	analysis, err := a.check(ctx, a.primary, text)
	if err == nil {
		return analysis
	}

	logger(ctx).Error(
		"oracle check failed",
		slog.String(logx.FieldProvider, a.primary.Provider().String()),
		logx.Error(err),
	)

	if a.fallback == nil || a.fallback.Provider() == a.primary.Provider() {
		return failed(err)
	}

	logger(ctx).Info(
		"falling back to another oracle",
		slog.String(logx.FieldProvider, a.fallback.Provider().String()),
	)

	analysis, err = a.check(ctx, a.fallback, text)
	if err != nil {
		logger(ctx).Error(
			"oracle fallback failed",
			slog.String(logx.FieldProvider, a.fallback.Provider().String()),
			logx.Error(err),
		)

		return failed(err)
	}

	return analysis
}

func (a Analyzer) check(ctx context.Context, checker Checker, text string) (entity.Analysis, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()

	analysis, err := checker.Check(ctx, text)

	status := statusSuccess
	if err != nil {
		status = statusError
	}

	a.metrics.ObserveOracleCall(checker.Provider().String(), status, time.Since(start))

	if err != nil {
		return entity.Analysis{}, fmt.Errorf("%s.Check: %w", checker.Provider(), err)
	}

	return analysis, nil
}

func failed(err error) entity.Analysis {
	message := err.Error()

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	return entity.Analysis{Success: false, Error: message}
}
