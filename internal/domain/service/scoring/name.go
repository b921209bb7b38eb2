package scoring

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"profile_validator/internal/domain/entity"
)

// whitespace is a character class body matching ASCII whitespace, vertical
// tab, every Unicode space separator and the BOM.
const whitespace = `\s\x{000B}\p{Z}\x{FEFF}`

// Latin, Latin Extended and Khmer letters plus separators.
var namePattern = regexp.MustCompile(`^[a-zA-Z\x{00C0}-\x{024F}\x{1780}-\x{17FF}` + whitespace + `'.-]+$`) //nolint:gochecknoglobals

// Name scores a full name on the 20-point scale.
func Name(name string) entity.Result {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return rejected(nil, "Name is required")
	}

	parts := strings.Fields(trimmed)
	length := utf8.RuneCountInString(trimmed)
	card := newScorecard(4) //nolint:mnd

	if length >= 2 { //nolint:mnd
		card.add(4) //nolint:mnd
	} else {
		card.warn("Name seems too short")
	}

	if len(parts) >= 2 { //nolint:mnd
		card.add(4) //nolint:mnd
	} else {
		card.warn("Consider providing both first and last name")
	}

	if namePattern.MatchString(trimmed) {
		card.add(4) //nolint:mnd
	} else {
		card.warn("Name contains unusual characters")
	}

	if lo.EveryBy(parts, startsUpper) {
		card.add(4) //nolint:mnd
	} else {
		card.warn("Names should start with uppercase letters")
	}

	if strings.ContainsFunc(trimmed, isDigit) {
		card.warn("Name contains numbers")
		card.penalize(4) //nolint:mnd
	}

	lastName := ""
	if len(parts) > 1 {
		lastName = parts[len(parts)-1]
	}

	return card.result(map[string]any{
		"length":    length,
		"parts":     len(parts),
		"firstName": parts[0],
		"lastName":  lastName,
	})
}

// startsUpper reports whether the first rune is unchanged by upper-casing,
// which holds for capitals and for caseless scripts.
func startsUpper(part string) bool {
	r, _ := utf8.DecodeRuneInString(part)

	return unicode.ToUpper(r) == r
}
