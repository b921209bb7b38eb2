package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/reference"
)

const (
	passwordMinLength  = 12
	passwordLongLength = 16
	passwordHugeLength = 20
	passwordMaxTier    = 10
	passwordClassMin   = 2
	passwordRunLength  = 3
)

// Password rates a password on the 0-10 tier scale. Every flag awards its
// points independently; the full-diversity bonus stacks on top of the
// per-class points.
func Password(password string) entity.PasswordStrength {
	if password == "" {
		return entity.PasswordStrength{
			Strength: 0,
			Text:     reference.PasswordStrength(0).Text,
			Color:    reference.PasswordStrength(0).Color,
			Requirements: entity.PasswordRequirements{
				NoSequence: true,
				NoRepeat:   true,
				NoCommon:   true,
			},
			Analysis: entity.PasswordAnalysis{Complexity: complexity(0)},
		}
	}

	runes := []rune(password)
	length := utf8.RuneCountInString(password)

	upper := lo.CountBy(runes, isUpper)
	lower := lo.CountBy(runes, isLower)
	digits := lo.CountBy(runes, isDigit)
	special := lo.CountBy(runes, isSpecial)

	req := entity.PasswordRequirements{
		Length:     length >= passwordMinLength,
		Uppercase:  upper >= passwordClassMin,
		Lowercase:  lower >= passwordClassMin,
		Numbers:    digits >= passwordClassMin,
		Special:    special >= passwordClassMin,
		NoSequence: !hasSequence(password),
		NoRepeat:   !hasRepeat(runes),
		NoCommon:   !containsWeakPassword(password),
	}

	points := []struct {
		ok     bool
		points int
	}{
		{req.Length, 2},
		{req.Uppercase, 1},
		{req.Lowercase, 1},
		{req.Numbers, 1},
		{req.Special, 1},
		{req.NoSequence, 1},
		{req.NoRepeat, 1},
		{req.NoCommon, 2},
		{length >= passwordLongLength, 1},
		{length >= passwordHugeLength, 1},
	}

	strength := 0

	for _, p := range points {
		if p.ok {
			strength += p.points
		}
	}

	charTypes := lo.Count([]bool{upper > 0, lower > 0, digits > 0, special > 0}, true)
	if charTypes == 4 { //nolint:mnd
		strength++
	}

	strength = min(strength, passwordMaxTier)
	label := reference.PasswordStrength(strength)

	return entity.PasswordStrength{
		Strength:     strength,
		Text:         label.Text,
		Color:        label.Color,
		Requirements: req,
		Analysis: entity.PasswordAnalysis{
			Length:     length,
			CharTypes:  charTypes,
			Complexity: complexity(strength),
		},
	}
}

func complexity(strength int) string {
	switch {
	case strength >= 7: //nolint:mnd
		return "High"
	case strength >= 4: //nolint:mnd
		return "Medium"
	default:
		return "Low"
	}
}

func hasSequence(password string) bool {
	lower := strings.ToLower(password)

	for _, seq := range reference.Sequences {
		for i := 0; i+passwordRunLength <= len(seq); i++ {
			if strings.Contains(lower, seq[i:i+passwordRunLength]) {
				return true
			}
		}
	}

	return false
}

func hasRepeat(runes []rune) bool {
	for i := 0; i+2 < len(runes); i++ {
		if runes[i] == runes[i+1] && runes[i] == runes[i+2] {
			return true
		}
	}

	return false
}

func containsWeakPassword(password string) bool {
	lower := strings.ToLower(password)

	return lo.ContainsBy(reference.WeakPasswords, func(weak string) bool {
		return strings.Contains(lower, weak)
	})
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSpecial(r rune) bool { return !isUpper(r) && !isLower(r) && !isDigit(r) }
