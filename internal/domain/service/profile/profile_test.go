package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"profile_validator/internal/domain"
	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/service/profile"
	"profile_validator/pkg/errcodes"
)

const (
	longBio   = "I am a backend engineer with eight years of experience building distributed systems in Go and Python."
	mediumBio = "Backend developer who enjoys clean code and testing."
)

type fieldObservation struct {
	field entity.Field
	score int
}

type metricsRecorder struct {
	fields    []fieldObservation
	passwords []int
}

func (m *metricsRecorder) ObserveField(field entity.Field, result entity.Result) {
	m.fields = append(m.fields, fieldObservation{field: field, score: result.Score})
}

func (m *metricsRecorder) ObservePassword(strength int) {
	m.passwords = append(m.passwords, strength)
}

func analyzerReturning(analysis entity.Analysis) *profile.AnalyzerMock {
	return &profile.AnalyzerMock{
		AnalyzeFunc: func(context.Context, string) entity.Analysis {
			return analysis
		},
		StatusFunc: func() entity.OracleStatus {
			return entity.OracleStatus{CurrentProvider: "languagetool", LanguageTool: true}
		},
	}
}

func TestServiceValidateBioWithAI(t *testing.T) {
	rq := require.New(t)

	spelling := entity.Issue{
		Message:      "Possible spelling mistake found.",
		ShortMessage: "Spelling mistake",
		Suggestions:  []string{"experience"},
	}

	testCases := []struct {
		name          string
		bio           string
		analysis      entity.Analysis
		score         int
		valid         bool
		warnings      []string
		analyzeCalls  int
		expectOracled bool
	}{
		{
			// round(18*12/20)=11 + round(10*8/10)=8
			name:          "Oracle approves",
			bio:           longBio,
			analysis:      entity.Analysis{Success: true, Provider: entity.ProviderLanguageTool, Score: 10, Issues: []entity.Issue{spelling}},
			score:         19,
			valid:         true,
			warnings:      []string{`AI: Spelling mistake (try: "experience")`},
			analyzeCalls:  1,
			expectOracled: true,
		},
		{
			// round(16*12/20)=10 + round(5*8/10)=4
			name:          "Oracle is lukewarm",
			bio:           mediumBio,
			analysis:      entity.Analysis{Success: true, Provider: entity.ProviderOpenAI, Score: 5},
			score:         14,
			valid:         true,
			warnings:      []string{},
			analyzeCalls:  1,
			expectOracled: true,
		},
		{
			// 11 + fixed 4
			name:          "Oracle is down",
			bio:           longBio,
			analysis:      entity.Analysis{Success: false, Error: "LanguageTool request failed"},
			score:         15,
			valid:         true,
			warnings:      []string{},
			analyzeCalls:  1,
			expectOracled: true,
		},
		{
			name:          "Invalid bio skips the oracle",
			bio:           "Too short.",
			score:         0,
			valid:         false,
			warnings:      []string{},
			analyzeCalls:  0,
			expectOracled: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			analyzer := analyzerReturning(tc.analysis)
			recorder := &metricsRecorder{}

			report := profile.NewService(analyzer).
				WithMetrics(recorder).
				ValidateBioWithAI(context.Background(), tc.bio)

			rq.Equal(tc.score, report.Result.Score)
			rq.Equal(tc.valid, report.Result.Valid)
			rq.Equal(tc.warnings, report.Result.Warnings)
			rq.Len(analyzer.AnalyzeCalls(), tc.analyzeCalls)
			rq.Equal([]fieldObservation{{field: entity.FieldBio, score: tc.score}}, recorder.fields)

			if !tc.expectOracled {
				rq.Nil(report.Analysis)
				return
			}

			rq.NotNil(report.Analysis)
			rq.Equal(tc.analysis, *report.Analysis)
			rq.Equal(tc.bio, analyzer.AnalyzeCalls()[0].Text)
		})
	}
}

func TestServiceValidate(t *testing.T) {
	rq := require.New(t)

	service := profile.NewService(analyzerReturning(entity.Analysis{}))

	testCases := []struct {
		field entity.Field
		value string
		score int
	}{
		{field: entity.FieldName, value: "John Doe", score: 20},
		{field: entity.FieldEmail, value: "john.doe@gmail.com", score: 20},
		{field: entity.FieldPhone, value: "+855 12 345 678", score: 20},
		{field: entity.FieldBio, value: longBio, score: 18},
		{field: entity.FieldSkills, value: "Go, Python, C++, C#, Node.js", score: 20},
	}

	for _, tc := range testCases {
		t.Run(tc.field.String(), func(*testing.T) {
			result, err := service.Validate(context.Background(), tc.field, tc.value)
			rq.NoError(err)
			rq.Equal(tc.score, result.Score)
		})
	}

	_, err := service.Validate(context.Background(), entity.Field("password"), "secret")
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.NotFound, code)
}

func TestServiceValidateAll(t *testing.T) {
	rq := require.New(t)

	analyzer := analyzerReturning(entity.Analysis{})
	recorder := &metricsRecorder{}

	report := profile.NewService(analyzer).WithMetrics(recorder).ValidateAll(context.Background(), entity.Profile{
		Name:   "Sok Dara",
		Email:  "sok.dara@gmail.com",
		Phone:  "+855 12 345 678",
		Bio:    longBio,
		Skills: "Go, Python, PostgreSQL, Docker, Kubernetes",
	})

	rq.Equal(98, report.Summary.Score)
	rq.True(report.Summary.Valid)
	rq.Equal(5, report.Summary.ValidFields)
	rq.Empty(analyzer.AnalyzeCalls())
	rq.Equal([]fieldObservation{
		{field: entity.FieldName, score: 20},
		{field: entity.FieldEmail, score: 20},
		{field: entity.FieldPhone, score: 20},
		{field: entity.FieldBio, score: 18},
		{field: entity.FieldSkills, score: 20},
	}, recorder.fields)
}

func TestServiceCheckPasswordAndStatus(t *testing.T) {
	rq := require.New(t)

	analyzer := analyzerReturning(entity.Analysis{})
	recorder := &metricsRecorder{}
	service := profile.NewService(analyzer).WithMetrics(recorder)

	strength := service.CheckPassword(context.Background(), "Xk#9Lm$2Qv!7Zp@4Wr")

	rq.Equal(10, strength.Strength)
	rq.Equal([]int{10}, recorder.passwords)
	rq.Equal(entity.OracleStatus{CurrentProvider: "languagetool", LanguageTool: true}, service.OracleStatus())
	rq.Len(analyzer.StatusCalls(), 1)
}
