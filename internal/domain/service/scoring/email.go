package scoring

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/net/publicsuffix"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/reference"
)

//nolint:gochecknoglobals
var (
	emailPattern       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	placeholderPattern = regexp.MustCompile(`^(test|spam|fake|temp|noreply|no-reply)`)
)

// Email scores an email address on the 20-point scale.
func Email(email string) entity.Result {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return rejected(nil, "Email is required")
	}

	if !emailPattern.MatchString(normalized) || strings.ContainsFunc(normalized, unicode.IsSpace) {
		return rejected(nil, "Invalid email format")
	}

	localPart, domain, _ := strings.Cut(normalized, "@")
	labels := strings.Split(domain, ".")
	tld := labels[len(labels)-1]

	card := newScorecard(8) //nolint:mnd

	isDisposable := matchesAnyDomain(domain, reference.DisposableEmailProviders)
	if isDisposable {
		card.warn("Disposable/temporary email detected")
		card.penalize(4) //nolint:mnd
	}

	isLegit := matchesAnyDomain(domain, reference.LegitimateEmailProviders)
	isEducational := tld == "edu" || lo.ContainsBy(reference.EducationalSuffixes, func(suffix string) bool {
		return strings.HasSuffix(domain, suffix)
	})
	tldLength := utf8.RuneCountInString(tld)
	isBusiness := len(labels) >= 2 &&
		utf8.RuneCountInString(labels[0]) >= 2 &&
		tldLength >= 2 && tldLength <= 6

	switch {
	case isLegit:
		card.add(6) //nolint:mnd
	case isEducational:
		card.warn("Educational email detected")
		card.add(4) //nolint:mnd
	case isBusiness:
		card.warn("Custom/business domain")
		card.add(2) //nolint:mnd
	default:
		card.warn("Unknown email provider")
	}

	if utf8.RuneCountInString(localPart) >= 3 { //nolint:mnd
		card.add(4) //nolint:mnd
	} else {
		card.warn("Email username is very short")
	}

	if placeholderPattern.MatchString(localPart) {
		card.warn("Email appears to be a test/temporary address")
	} else {
		card.add(2) //nolint:mnd
	}

	return card.result(map[string]any{
		"localPart":         localPart,
		"domain":            domain,
		"tld":               tld,
		"registrableDomain": registrableDomain(domain),
		"isLegitProvider":   isLegit,
		"isEducational":     isEducational,
		"isBusinessDomain":  isBusiness,
		"isDisposable":      isDisposable,
	})
}

// matchesAnyDomain reports whether domain equals or is a subdomain of one of
// the entries. A dotless entry such as "edu" never matches exactly.
func matchesAnyDomain(domain string, entries []string) bool {
	return lo.ContainsBy(entries, func(entry string) bool {
		if strings.HasSuffix(domain, "."+entry) {
			return true
		}

		return strings.Contains(entry, ".") && domain == entry
	})
}

func registrableDomain(domain string) string {
	registrable, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		return domain
	}

	return registrable
}
