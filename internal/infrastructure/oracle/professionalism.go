package oracle

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"profile_validator/internal/domain/entity"
)

const (
	issueTypeProfessionalism = "professionalism"
	issueTypeContent         = "content"

	qualityExcellent = "excellent"
	qualityGood      = "good"
	qualityFair      = "fair"
	qualityPoor      = "poor"

	maxQualityScore    = 10
	minPenalizedScore  = 2
	highSeverityWeight = 3
	briefWordCount     = 10
	wellWrittenWords   = 20
	repeatedCharRun    = 4
	maxSummaryAdvice   = 5
)

type professionalismCheck struct {
	matches   func(text string) bool
	message   string
	issueType string
	severity  string
}

func pattern(expr string) func(string) bool {
	return regexp.MustCompile(expr).MatchString
}

//nolint:gochecknoglobals
var professionalismChecks = []professionalismCheck{
	{pattern(`(?i)\b(blah|bleh|meh)\b`), "Contains filler words", issueTypeProfessionalism, entity.SeverityHigh},
	{pattern(`(?i)\b(haha|hehe|lol|lmao|rofl)\b`), "Contains informal laughter", issueTypeProfessionalism, entity.SeverityHigh},
	{pattern(`(?i)\b(um+|uh+|er+|hmm+)\b`), "Contains verbal fillers", issueTypeProfessionalism, entity.SeverityHigh},
	{pattern(`(?i)\b(stuff|things|whatever)\b`), "Contains vague words", issueTypeProfessionalism, entity.SeverityHigh},
	{hasRepeatedRun, "Contains repeated characters", issueTypeProfessionalism, entity.SeverityHigh},
	{pattern(`(?i)\b(test|testing|asdf|qwerty)\b`), "Contains test/placeholder text", issueTypeProfessionalism, entity.SeverityHigh},
	{
		pattern(`(?i)\b(awesome|cool|dude|bro|gonna|wanna|gotta|kinda|sorta)\b`),
		"Contains overly casual language", issueTypeProfessionalism, entity.SeverityMedium,
	},
	{pattern(`!{2,}`), "Contains excessive exclamation marks", issueTypeProfessionalism, entity.SeverityMedium},
	{pattern(`\?{2,}`), "Contains excessive question marks", issueTypeProfessionalism, entity.SeverityMedium},
	{tooRepetitive, "Contains too much repetition", issueTypeContent, entity.SeverityHigh},
	{tooBrief, "Bio is too brief for a professional profile", issueTypeContent, entity.SeverityMedium},
}

// ProfessionalismIssues flags wording that does not belong in a workplace
// profile. It runs locally and needs no backend.
func ProfessionalismIssues(text string) []entity.Issue {
	issues := []entity.Issue{}

	for _, check := range professionalismChecks {
		if check.matches(text) {
			issues = append(issues, entity.Issue{
				Message:  check.message,
				Category: check.issueType,
				Type:     check.issueType,
				Severity: check.severity,
			})
		}
	}

	return issues
}

// Summarize merges backend issues with the professionalism findings.
func Summarize(issues []entity.Issue, text string) entity.AnalysisSummary {
	categories := lo.CountValuesBy(issues, func(i entity.Issue) string {
		return i.Category
	})

	professionalism := ProfessionalismIssues(text)
	all := append(append([]entity.Issue{}, issues...), professionalism...)
	high := countHigh(professionalism)

	var quality string

	switch total := len(all); {
	case high > 0:
		quality = qualityPoor
	case total > 5:
		quality = qualityPoor
	case total > 3:
		quality = qualityFair
	case total > 0:
		quality = qualityGood
	default:
		quality = qualityExcellent
	}

	return entity.AnalysisSummary{
		TotalIssues:           len(all),
		Categories:            categories,
		OverallQuality:        quality,
		ProfessionalismIssues: professionalism,
		Suggestions: lo.Map(all[:min(len(all), maxSummaryAdvice)], func(i entity.Issue, _ int) string {
			return i.Message
		}),
	}
}

// Score rates the text 0-10 from the number of backend issues and the
// professionalism findings.
func Score(issues []entity.Issue, text string) int {
	score := maxQualityScore

	high := countHigh(ProfessionalismIssues(text))
	if high > 0 {
		score = max(minPenalizedScore, score-high*highSeverityWeight)
	}

	switch n := len(issues); {
	case n == 0:
	case n <= 2:
		score = min(score, 8)
	case n <= 4:
		score = min(score, 6)
	case n <= 6:
		score = min(score, 4)
	default:
		score = min(score, 2)
	}

	if len(strings.Fields(text)) >= wellWrittenWords && len(issues) == 0 && high == 0 {
		score = maxQualityScore
	}

	return max(0, score)
}

func countHigh(issues []entity.Issue) int {
	return lo.CountBy(issues, func(i entity.Issue) bool {
		return i.Severity == entity.SeverityHigh
	})
}

// hasRepeatedRun reports a character repeated at least four times in a row,
// ignoring case.
func hasRepeatedRun(text string) bool {
	var (
		prev rune
		run  int
	)

	for _, r := range text {
		r = unicode.ToLower(r)

		if run > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}

		if run >= repeatedCharRun {
			return true
		}
	}

	return false
}

func tooRepetitive(text string) bool {
	words := strings.Fields(text)
	unique := lo.Uniq(lo.Map(words, func(w string, _ int) string {
		return strings.ToLower(w)
	}))

	return len(words) > 5 && float64(len(unique)) < float64(len(words))*0.5
}

func tooBrief(text string) bool {
	return len(strings.Fields(text)) < briefWordCount
}

func qualityScore(quality string) int {
	switch strings.ToLower(quality) {
	case qualityExcellent:
		return 10
	case qualityGood:
		return 8
	case qualityFair:
		return 5
	case qualityPoor:
		return 2
	default:
		return 5
	}
}
