package profile

import (
	"context"
	"log/slog"

	"profile_validator/internal/domain"
	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/service/scoring"
	"profile_validator/pkg/contextx"
	"profile_validator/pkg/errcodes"
	"profile_validator/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//go:generate moq -rm -out analyzer_mock.gen.go . analyzer:AnalyzerMock
type analyzer interface {
	Analyze(ctx context.Context, text string) entity.Analysis
	Status() entity.OracleStatus
}

type validationMetrics interface {
	ObserveField(field entity.Field, result entity.Result)
	ObservePassword(strength int)
}

type nopMetrics struct{}

func (nopMetrics) ObserveField(entity.Field, entity.Result) {}
func (nopMetrics) ObservePassword(int)                      {}

// Service scores profile fields and enriches bios through the text-quality
// oracle. It keeps no state between calls.
type Service struct {
	analyzer analyzer
	metrics  validationMetrics
}

func NewService(analyzer analyzer) *Service {
	return &Service{
		analyzer: analyzer,
		metrics:  nopMetrics{},
	}
}

func (s *Service) WithMetrics(m validationMetrics) *Service {
	s.metrics = m
	return s
}

func (s *Service) CheckPassword(ctx context.Context, password string) entity.PasswordStrength {
	strength := scoring.Password(password)

	s.metrics.ObservePassword(strength.Strength)

	logger(ctx).Debug("password checked", slog.Int(logx.FieldScore, strength.Strength))

	return strength
}

// Validate scores a single field without consulting the oracle.
func (s *Service) Validate(ctx context.Context, field entity.Field, value string) (entity.Result, error) {
	var result entity.Result

	switch field {
	case entity.FieldName:
		result = scoring.Name(value)
	case entity.FieldEmail:
		result = scoring.Email(value)
	case entity.FieldPhone:
		result = scoring.Phone(value)
	case entity.FieldBio:
		result = scoring.Bio(value)
	case entity.FieldSkills:
		result = scoring.Skills(value)
	default:
		return entity.Result{}, domain.NewError(errcodes.NotFound, "unknown field "+field.String())
	}

	s.observe(ctx, field, result)

	return result, nil
}

// ValidateBioWithAI scores the bio and, when it passes the basic rules,
// rescales the score with the oracle's opinion. A failing oracle lowers the
// ceiling but never fails the call.
func (s *Service) ValidateBioWithAI(ctx context.Context, bio string) entity.BioReport {
	basic := scoring.Bio(bio)

	if !basic.Valid || basic.Score == 0 {
		s.observe(ctx, entity.FieldBio, basic)
		return entity.BioReport{Result: basic}
	}

	analysis := s.analyzer.Analyze(ctx, bio)
	result := scoring.CombineBio(basic, analysis)

	if !analysis.Success {
		logger(ctx).Warn("bio scored without oracle", slog.String(logx.FieldError, analysis.Error))
	}

	s.observe(ctx, entity.FieldBio, result)

	return entity.BioReport{Result: result, Analysis: &analysis}
}

func (s *Service) ValidateAll(ctx context.Context, p entity.Profile) entity.ProfileReport {
	report := scoring.Profile(p)

	for _, field := range scoring.Fields {
		s.observe(ctx, field, report.Results[field])
	}

	logger(ctx).Info(
		"profile validated",
		slog.Int(logx.FieldScore, report.Summary.Score),
		slog.Bool("valid", report.Summary.Valid),
	)

	return report
}

func (s *Service) OracleStatus() entity.OracleStatus {
	return s.analyzer.Status()
}

func (s *Service) observe(ctx context.Context, field entity.Field, result entity.Result) {
	s.metrics.ObserveField(field, result)

	logger(ctx).Debug(
		"field validated",
		slog.String(logx.FieldField, field.String()),
		slog.Int(logx.FieldScore, result.Score),
	)
}
