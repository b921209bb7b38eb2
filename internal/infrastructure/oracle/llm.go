package oracle

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"profile_validator/internal/domain"
	"profile_validator/internal/domain/entity"
	"profile_validator/pkg/errcodes"
)

const reviewPrompt = `Analyze this bio text for grammar, spelling, clarity, and professionalism. Return a JSON response with:
- issues: array of {type, message, suggestion}
- overallQuality: "excellent", "good", "fair", or "poor"
- suggestions: array of improvement tips
- tone: detected tone (professional, casual, etc.)

Bio text: %q

Respond only with valid JSON.`

const strictReviewPrompt = `You are a strict professional bio reviewer. Analyze this bio text for a job application or professional profile.

Evaluate these criteria:
1. PROFESSIONALISM: Is the language appropriate for a workplace? Filler words like "blah", "haha", "lol", slang, or nonsense text is UNPROFESSIONAL.
2. GRAMMAR & SPELLING: Check for errors, missing punctuation, capitalization issues.
3. CLARITY: Is it clear and meaningful? Vague or meaningless content should be flagged.
4. STRUCTURE: Does it have proper sentences? Is it well-organized?
5. CONTENT QUALITY: Does it actually describe the person professionally?

Be STRICT in your evaluation. A bio with filler words, nonsense, or unprofessional language should be rated "poor" or "fair", NOT "excellent" or "good".

Return a JSON response with:
- issues: array of {type: "grammar"|"professionalism"|"clarity"|"structure", message: string, suggestion: string}
- overallQuality: "excellent" (perfect professional bio), "good" (minor issues), "fair" (needs improvement), or "poor" (unprofessional/inappropriate)
- suggestions: array of improvement tips
- tone: detected tone (professional, casual, unprofessional, etc.)
- isProfessional: boolean (true only if suitable for a job application)

Bio text: %q

Respond ONLY with valid JSON, no markdown code blocks.`

var codeFence = regexp.MustCompile("(?i)```(json)?\\n?|\\n?```") //nolint:gochecknoglobals

type review struct {
	Issues []struct {
		Type       string `json:"type"`
		Message    string `json:"message"`
		Suggestion string `json:"suggestion"`
	} `json:"issues"`
	OverallQuality string   `json:"overallQuality"`
	Suggestions    []string `json:"suggestions"`
	Tone           string   `json:"tone"`
	IsProfessional *bool    `json:"isProfessional"`
}

// decodeReview parses the JSON document an LLM was asked to produce. Models
// sometimes wrap it in a markdown code fence.
func decodeReview(provider entity.Provider, content string) (review, error) {
	var r review

	cleaned := strings.TrimSpace(codeFence.ReplaceAllString(content, ""))

	if err := json.UnmarshalFromString(cleaned, &r); err != nil {
		return review{}, domain.WrapError(
			err,
			errcodes.OracleBadResponse,
			fmt.Sprintf("Failed to parse %s response as JSON", provider),
		)
	}

	return r, nil
}

func (r review) analysis(provider entity.Provider) entity.Analysis {
	issues := make([]entity.Issue, 0, len(r.Issues))

	for _, i := range r.Issues {
		issue := entity.Issue{
			Message:     i.Message,
			Category:    i.Type,
			Type:        i.Type,
			Suggestions: []string{},
		}

		if i.Suggestion != "" {
			issue.Suggestions = append(issue.Suggestions, i.Suggestion)
		}

		issues = append(issues, issue)
	}

	return entity.Analysis{
		Success:  true,
		Provider: provider,
		Issues:   issues,
		Summary: entity.AnalysisSummary{
			TotalIssues: len(issues),
			Categories: lo.CountValuesBy(issues, func(i entity.Issue) string {
				return i.Category
			}),
			OverallQuality:        strings.ToLower(r.OverallQuality),
			ProfessionalismIssues: []entity.Issue{},
			Suggestions:           lo.Ternary(r.Suggestions == nil, []string{}, r.Suggestions),
			Tone:                  r.Tone,
			IsProfessional:        r.IsProfessional,
		},
		Score: qualityScore(r.OverallQuality),
	}
}
