package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"profile_validator/internal/domain/entity"
)

const (
	BioMinLength  = 20
	bioMaxAdvised = 500
)

//nolint:gochecknoglobals
var spamPattern = regexp.MustCompile(`(?i)\b(click here|buy now|free money|winner|congratulations)\b`)

// Bio scores a short biography on the 20-point scale.
func Bio(bio string) entity.Result {
	trimmed := strings.TrimSpace(bio)
	if trimmed == "" {
		return rejected(nil, "Bio is required")
	}

	words := strings.Fields(trimmed)
	wordCount := len(words)
	charCount := utf8.RuneCountInString(trimmed)

	if charCount < BioMinLength {
		return rejected(
			map[string]any{
				"charCount":     charCount,
				"wordCount":     wordCount,
				"charRemaining": BioMinLength - charCount,
			},
			fmt.Sprintf("Bio is too short (%d/%d characters minimum)", charCount, BioMinLength),
		)
	}

	card := newScorecard(6) //nolint:mnd

	switch {
	case charCount >= 100: //nolint:mnd
		card.add(6) //nolint:mnd
	case charCount >= 50: //nolint:mnd
		card.add(4) //nolint:mnd
	default:
		card.add(2) //nolint:mnd
	}

	if charCount > bioMaxAdvised {
		card.warn(fmt.Sprintf("Bio is very long (over %d characters)", bioMaxAdvised))
	}

	if wordCount >= 5 { //nolint:mnd
		card.add(2) //nolint:mnd
	} else {
		card.warn("Consider adding more detail to your bio")
	}

	if isRepetitive(words) {
		card.warn("Bio contains repetitive words")
		card.penalize(2) //nolint:mnd
	}

	if isUpper(rune(trimmed[0])) {
		card.add(2) //nolint:mnd
	} else {
		card.warn("Bio should start with a capital letter")
	}

	if strings.ContainsAny(trimmed[len(trimmed)-1:], ".!?") {
		card.add(2) //nolint:mnd
	} else {
		card.warn("Bio should end with proper punctuation")
	}

	if spamPattern.MatchString(trimmed) {
		card.warn("Bio may contain spam-like content")
		card.penalize(4) //nolint:mnd
	}

	return card.result(map[string]any{
		"charCount":     charCount,
		"wordCount":     wordCount,
		"charRemaining": max(0, bioMaxAdvised-charCount),
	})
}

// isRepetitive reports whether the most frequent word takes more than a third
// of a text longer than five words.
func isRepetitive(words []string) bool {
	if len(words) <= 5 { //nolint:mnd
		return false
	}

	freq := lo.CountValues(lo.Map(words, func(w string, _ int) string {
		return strings.ToLower(w)
	}))

	return lo.Max(lo.Values(freq))*3 > len(words) //nolint:mnd
}
