package scoring_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/service/scoring"
)

func TestSkills(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		input    string
		score    int
		valid    bool
		errors   []string
		warnings []string
	}{
		{
			// base 4, count +4, duplicates +2, quality +6
			name:     "Case-insensitive duplicate",
			input:    "JS, js, Python",
			score:    16,
			valid:    true,
			errors:   []string{},
			warnings: []string{"Duplicate skills detected"},
		},
		{
			name:     "Five unique skills",
			input:    "Go, Python, C++, C#, Node.js",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			// base 4, count +4, unique +4, quality +6
			name:     "Non-breaking space inside a skill",
			input:    "Go, Python, Node\u00a0JS",
			score:    18,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			name:     "Single skill",
			input:    "Go",
			score:    14,
			valid:    true,
			errors:   []string{},
			warnings: []string{"Consider adding more skills (3+ recommended)"},
		},
		{
			name:     "Minority invalid",
			input:    "Go, Python, Rust, K",
			score:    15,
			valid:    true,
			errors:   []string{},
			warnings: []string{`Some skills have issues: "K"`},
		},
		{
			name:     "Majority invalid",
			input:    "Go, C, Rust@Home",
			score:    12,
			valid:    true,
			errors:   []string{},
			warnings: []string{`Some skills have issues: "C", "Rust@Home"`},
		},
		{
			name:     "Empty",
			input:    "   ",
			errors:   []string{"Skills are required"},
			warnings: []string{},
		},
		{
			name:     "Only commas",
			input:    " , ,, ",
			errors:   []string{"Please provide at least one skill"},
			warnings: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := scoring.Skills(tc.input)

			rq.Equal(tc.score, r.Score)
			rq.Equal(tc.valid, r.Valid)
			rq.Equal(tc.errors, r.Errors)
			rq.Equal(tc.warnings, r.Warnings)
		})
	}
}

func TestSkillsDetails(t *testing.T) {
	rq := require.New(t)

	long := strings.Repeat("x", 51)
	r := scoring.Skills("Go, " + long + ", UI/UX, C")

	rq.Equal(4, r.Details["totalSkills"])
	rq.Equal(4, r.Details["uniqueCount"])
	rq.Equal([]string{"Go", "UI/UX"}, r.Details["validSkills"])
	rq.Equal([]entity.InvalidSkill{
		{Skill: long, Reason: "Too long"},
		{Skill: "C", Reason: "Too short"},
	}, r.Details["invalidSkills"])

	r = scoring.Skills("JS, js, Python")
	rq.Equal(2, r.Details["uniqueCount"])
	rq.Equal([]entity.InvalidSkill{}, r.Details["invalidSkills"])
}

func TestSplitSkills(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]string{"Go", "SQL"}, scoring.SplitSkills(" Go ,, SQL ,"))
	rq.Empty(scoring.SplitSkills(","))
}
