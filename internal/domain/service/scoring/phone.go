package scoring

import (
	"fmt"
	"strings"
	"unicode"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/reference"
)

const (
	phoneMinDigits = 9
	phoneMaxDigits = 12
	prefixLength   = 2
)

const (
	PhoneTypeMobile   = "Mobile"
	PhoneTypeLandline = "Landline"
	PhoneTypeUnknown  = "Unknown"
)

// Phone scores a Cambodian phone number on the 20-point scale.
func Phone(phone string) entity.Result {
	if strings.TrimSpace(phone) == "" {
		return rejected(nil, "Phone number is required")
	}

	clean := stripPhoneSeparators(phone)

	if clean == "" || strings.ContainsFunc(clean, func(r rune) bool { return !isDigit(r) }) {
		return rejected(
			map[string]any{"cleanPhone": clean},
			"Phone number should contain only digits",
		)
	}

	if len(clean) < phoneMinDigits || len(clean) > phoneMaxDigits {
		return rejected(
			map[string]any{"cleanPhone": clean, "digitCount": len(clean)},
			fmt.Sprintf("Phone number must be %d-%d digits", phoneMinDigits, phoneMaxDigits),
		)
	}

	card := newScorecard(8) //nolint:mnd

	national := clean
	hasCountryCode := false

	switch {
	case strings.HasPrefix(clean, reference.CountryCode):
		national = strings.TrimPrefix(clean, reference.CountryCode)
		hasCountryCode = true
	case strings.HasPrefix(clean, "0"):
		national = clean[1:]
	}

	prefix := national[:min(prefixLength, len(national))]
	_, isMobile := reference.MobilePrefixes[prefix]
	_, isLandline := reference.LandlinePrefixes[prefix]

	if isMobile || isLandline {
		card.add(6) //nolint:mnd
	} else {
		card.warn("Unrecognized Cambodian prefix: " + prefix)
	}

	if hasCountryCode {
		card.add(4) //nolint:mnd
	} else {
		card.warn("Consider using international format (+855)")
		card.add(2) //nolint:mnd
	}

	carrier := reference.Carrier(prefix)
	if isMobile && carrier != reference.CarrierUnknown {
		card.add(2) //nolint:mnd
	}

	phoneType := PhoneTypeUnknown

	switch {
	case isMobile:
		phoneType = PhoneTypeMobile
	case isLandline:
		phoneType = PhoneTypeLandline
	}

	if !isMobile {
		carrier = reference.CarrierNotApply
	}

	return card.result(map[string]any{
		"originalInput":       phone,
		"cleanNumber":         clean,
		"nationalNumber":      national,
		"digitCount":          len(clean),
		"internationalFormat": "+" + reference.CountryCode + national,
		"prefix":              prefix,
		"type":                phoneType,
		"carrier":             carrier,
		"hasCountryCode":      hasCountryCode,
	})
}

func stripPhoneSeparators(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune("-().+", r) {
			return -1
		}

		return r
	}, phone)
}
