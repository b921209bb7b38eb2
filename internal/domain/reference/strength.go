package reference

import "profile_validator/internal/domain/entity"

const (
	colorNone   = "#666666"
	colorRed    = "#ff4757"
	colorOrange = "#ff6348"
	colorAmber  = "#ffa726"
	colorGreen  = "#2ed573"
	colorPurple = "#9c88ff"
)

// FieldStrength labels a 20-point field score.
func FieldStrength(score, maxScore int) entity.Strength {
	switch score {
	case 0:
		return entity.Strength{Text: "Invalid", Color: colorRed}
	case maxScore:
		return entity.Strength{Text: "Valid", Color: colorGreen}
	default:
		return entity.Strength{Text: "Partial", Color: colorAmber}
	}
}

// OverallStrength labels a 0-100 composite score.
func OverallStrength(score int) entity.Strength {
	switch {
	case score <= 0:
		return entity.Strength{Text: "None", Color: colorNone}
	case score < 40:
		return entity.Strength{Text: "Poor", Color: colorRed}
	case score < 60:
		return entity.Strength{Text: "Fair", Color: colorOrange}
	case score < 80:
		return entity.Strength{Text: "Good", Color: colorAmber}
	case score < 100:
		return entity.Strength{Text: "Very Good", Color: colorGreen}
	default:
		return entity.Strength{Text: "Perfect", Color: colorPurple}
	}
}
