package scoring_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/service/scoring"
	"profile_validator/pkg/tests"
)

//nolint:gochecknoglobals
var adversarialInputs = []string{
	"",
	" ",
	"\t\n",
	strings.Repeat("a", 100_000),
	strings.Repeat("!@#$%^&*()", 50),
	strings.Repeat("ё", 1000),
	"😀😀😀 😀😀😀 😀😀😀 😀😀😀",
	"\x00\x01\x02",
	"@@@...+++---",
	strings.Repeat("click here buy now ", 100),
	strings.Repeat(",", 100),
	"+855" + strings.Repeat("9", 50),
	"テスト@例え.日本",
}

func TestScoresStayInRange(t *testing.T) {
	rq := require.New(t)

	inputs := slices.Clone(adversarialInputs)
	random := tests.NewRandomizer()

	for range 200 {
		inputs = append(inputs, random.String(300))
	}

	scorers := map[string]func(string) entity.Result{
		"name":   scoring.Name,
		"email":  scoring.Email,
		"phone":  scoring.Phone,
		"bio":    scoring.Bio,
		"skills": scoring.Skills,
	}

	for field, score := range scorers {
		for _, input := range inputs {
			r := score(input)

			rq.GreaterOrEqual(r.Score, 0, field)
			rq.LessOrEqual(r.Score, r.MaxScore, field)
			rq.Equal(len(r.Errors) == 0 && r.Score >= scoring.ValidityThreshold, r.Valid, field)
			rq.NotNil(r.Warnings, field)
			rq.NotNil(r.Errors, field)

			if len(r.Errors) > 0 {
				rq.Zero(r.Score, field)
			}

			rq.Equal(r, score(input), "%s is not idempotent", field)
		}
	}

	for _, input := range inputs {
		p := scoring.Password(input)

		rq.GreaterOrEqual(p.Strength, 0)
		rq.LessOrEqual(p.Strength, 10)
		rq.Equal(p, scoring.Password(input))
	}
}
