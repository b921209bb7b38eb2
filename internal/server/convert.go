package server

import (
	"strings"

	"github.com/samber/lo"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/reference"
	"profile_validator/pkg/rest"
)

func newRESTPasswordStrength(s entity.PasswordStrength) rest.PasswordStrength {
	return rest.PasswordStrength{
		Strength:      s.Strength,
		StrengthText:  s.Text,
		StrengthColor: s.Color,
		Requirements:  rest.PasswordRequirements(s.Requirements),
		Analysis:      rest.PasswordAnalysis(s.Analysis),
	}
}

func newRESTFieldResult(field entity.Field, r entity.Result) rest.FieldResult {
	strength := reference.FieldStrength(r.Score, r.MaxScore)

	return rest.FieldResult{
		Field:         field.String(),
		Valid:         r.Valid,
		Score:         r.Score,
		MaxScore:      r.MaxScore,
		Errors:        nonNil(r.Errors),
		Warnings:      nonNil(r.Warnings),
		Details:       lo.Ternary(r.Details == nil, map[string]any{}, r.Details),
		StrengthText:  strength.Text,
		StrengthColor: strength.Color,
	}
}

func newRESTBioAIResult(report entity.BioReport) rest.BioAIResult {
	return rest.BioAIResult{
		FieldResult: newRESTFieldResult(entity.FieldBio, report.Result),
		AIAnalysis:  newRESTAIAnalysis(report.Analysis),
	}
}

func newRESTAIAnalysis(a *entity.Analysis) *rest.AIAnalysis {
	if a == nil {
		return nil
	}

	if !a.Success {
		return &rest.AIAnalysis{Error: a.Error}
	}

	return &rest.AIAnalysis{
		Provider: a.Provider.String(),
		Issues:   lo.Map(a.Issues, newRESTAIIssue),
		Summary: &rest.AISummary{
			TotalIssues:           a.Summary.TotalIssues,
			Categories:            lo.Ternary(a.Summary.Categories == nil, map[string]int{}, a.Summary.Categories),
			OverallQuality:        a.Summary.OverallQuality,
			ProfessionalismIssues: lo.Map(a.Summary.ProfessionalismIssues, newRESTAIIssue),
			Suggestions:           nonNil(a.Summary.Suggestions),
			Tone:                  a.Summary.Tone,
			IsProfessional:        a.Summary.IsProfessional,
		},
		AIScore: lo.ToPtr(a.Score),
	}
}

func newRESTAIIssue(i entity.Issue, _ int) rest.AIIssue {
	return rest.AIIssue{
		Message:      i.Message,
		ShortMessage: i.ShortMessage,
		Context:      i.Context,
		Suggestions:  nonNil(i.Suggestions),
		Category:     i.Category,
		Type:         i.Type,
		Severity:     i.Severity,
	}
}

func newRESTProfileReport(report entity.ProfileReport) rest.ProfileReport {
	result := func(field entity.Field) rest.FieldResult {
		return newRESTFieldResult(field, report.Results[field])
	}

	return rest.ProfileReport{
		Results: rest.ProfileResults{
			Name:   result(entity.FieldName),
			Email:  result(entity.FieldEmail),
			Phone:  result(entity.FieldPhone),
			Bio:    result(entity.FieldBio),
			Skills: result(entity.FieldSkills),
		},
		Summary: rest.Summary{
			Valid:         report.Summary.Valid,
			Score:         report.Summary.Score,
			MaxScore:      report.Summary.MaxScore,
			Percentage:    report.Summary.Percentage,
			StrengthText:  report.Summary.Strength.Text,
			StrengthColor: report.Summary.Strength.Color,
			ValidFields:   report.Summary.ValidFields,
			TotalFields:   report.Summary.TotalFields,
		},
	}
}

func newRESTAIStatus(s entity.OracleStatus) rest.AIStatus {
	return rest.AIStatus{
		CurrentProvider: strings.ToLower(s.CurrentProvider),
		Available: rest.AIAvailability{
			LanguageTool: s.LanguageTool,
			OpenAI:       s.OpenAI,
			Gemini:       s.Gemini,
		},
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
