package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"profile_validator/internal/domain/entity"
)

const (
	skillMinLength = 2
	skillMaxLength = 50
)

var skillPattern = regexp.MustCompile(`^[a-zA-Z0-9` + whitespace + `+#./-]+$`) //nolint:gochecknoglobals

// Skills scores a comma-separated skill list on the 20-point scale.
func Skills(input string) entity.Result {
	if strings.TrimSpace(input) == "" {
		return rejected(nil, "Skills are required")
	}

	skills := SplitSkills(input)
	if len(skills) == 0 {
		return rejected(nil, "Please provide at least one skill")
	}

	card := newScorecard(4) //nolint:mnd

	switch {
	case len(skills) >= 5: //nolint:mnd
		card.add(6) //nolint:mnd
	case len(skills) >= 3: //nolint:mnd
		card.add(4) //nolint:mnd
	case len(skills) >= 2: //nolint:mnd
		card.add(2) //nolint:mnd
	default:
		card.warn("Consider adding more skills (3+ recommended)")
	}

	uniqueCount := len(lo.Uniq(lo.Map(skills, func(s string, _ int) string {
		return strings.ToLower(s)
	})))

	if uniqueCount == len(skills) {
		card.add(4) //nolint:mnd
	} else {
		card.warn("Duplicate skills detected")
		card.add(2) //nolint:mnd
	}

	valid := []string{}
	invalid := []entity.InvalidSkill{}

	for _, skill := range skills {
		if reason, ok := checkSkill(skill); !ok {
			invalid = append(invalid, entity.InvalidSkill{Skill: skill, Reason: reason})
		} else {
			valid = append(valid, skill)
		}
	}

	switch {
	case len(invalid) == 0:
		card.add(6) //nolint:mnd
	case len(invalid)*2 < len(skills):
		card.warn(skillIssues(invalid))
		card.add(3) //nolint:mnd
	default:
		card.warn(skillIssues(invalid))
	}

	return card.result(map[string]any{
		"totalSkills":   len(skills),
		"validSkills":   valid,
		"invalidSkills": invalid,
		"uniqueCount":   uniqueCount,
	})
}

// SplitSkills splits on commas, trims and drops empty tokens.
func SplitSkills(input string) []string {
	return lo.FilterMap(strings.Split(input, ","), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}

func checkSkill(skill string) (string, bool) {
	length := utf8.RuneCountInString(skill)

	switch {
	case length < skillMinLength:
		return "Too short", false
	case length > skillMaxLength:
		return "Too long", false
	case !skillPattern.MatchString(skill):
		return "Contains invalid characters", false
	default:
		return "", true
	}
}

func skillIssues(invalid []entity.InvalidSkill) string {
	quoted := lo.Map(invalid, func(s entity.InvalidSkill, _ int) string {
		return `"` + s.Skill + `"`
	})

	return "Some skills have issues: " + strings.Join(quoted, ", ")
}
