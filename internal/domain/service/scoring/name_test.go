package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"profile_validator/internal/domain/service/scoring"
)

func TestName(t *testing.T) {
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
			name:     "Full name",
			input:    "  John Doe ",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			name:     "Whitespace only",
			input:    "   ",
			score:    0,
			valid:    false,
			errors:   []string{"Name is required"},
			warnings: []string{},
		},
		{
			name:     "Single lowercase name",
			input:    "john",
			score:    12,
			valid:    true,
			errors:   []string{},
			warnings: []string{"Consider providing both first and last name", "Names should start with uppercase letters"},
		},
		{
			name:     "Single letter",
			input:    "J",
			score:    12,
			valid:    true,
			errors:   []string{},
			warnings: []string{"Name seems too short", "Consider providing both first and last name"},
		},
		{
			name:     "Digits",
			input:    "John D03",
			score:    12,
			valid:    true,
			errors:   []string{},
			warnings: []string{"Name contains unusual characters", "Name contains numbers"},
		},
		{
			name:     "Non-breaking space between parts",
			input:    "John\u00a0Smith",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			name:     "Ideographic space between parts",
			input:    "Sok\u3000Dara",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			name:     "Khmer script",
			input:    "សុខ ចាន់",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			name:     "Hyphen apostrophe and period",
			input:    "Mary-Jane O'Neil Jr.",
			score:    20,
			valid:    true,
			errors:   []string{},
			warnings: []string{},
		},
		{
			name:     "Digits only",
			input:    "1234",
			score:    8,
			valid:    true,
			errors:   []string{},
			warnings: []string{"Consider providing both first and last name", "Name contains unusual characters", "Name contains numbers"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := scoring.Name(tc.input)

			rq.Equal(tc.score, r.Score)
			rq.Equal(tc.valid, r.Valid)
			rq.Equal(20, r.MaxScore)
			rq.Equal(tc.errors, r.Errors)
			rq.Equal(tc.warnings, r.Warnings)
		})
	}
}

func TestNameDetails(t *testing.T) {
	rq := require.New(t)

	r := scoring.Name("Sok Dara Chan")

	rq.Equal(3, r.Details["parts"])
	rq.Equal("Sok", r.Details["firstName"])
	rq.Equal("Chan", r.Details["lastName"])
	rq.Equal(13, r.Details["length"])

	r = scoring.Name("Dara")
	rq.Equal("", r.Details["lastName"])
}
