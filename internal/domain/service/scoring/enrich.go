package scoring

import (
	"math"
	"slices"

	"profile_validator/internal/domain/entity"
)

const (
	basicBioShare    = 12
	oracleBioShare   = 8
	oracleMaxScore   = 10
	oracleFallback   = 4
	maxOracleRemarks = 3
)

// CombineBio rescales a valid basic bio result to 12 points and adds up to 8
// points from the oracle. A failed analysis contributes a flat 4 points and no
// warnings. The combined score replaces the basic one.
func CombineBio(basic entity.Result, analysis entity.Analysis) entity.Result {
	basicPart := int(math.Round(float64(basic.Score) * basicBioShare / MaxScore))

	oraclePart := oracleFallback
	if analysis.Success {
		oraclePart = int(math.Round(float64(min(max(analysis.Score, 0), oracleMaxScore)) * oracleBioShare / oracleMaxScore))
	}

	combined := basic
	combined.Score = min(basicPart+oraclePart, MaxScore)
	combined.Valid = len(basic.Errors) == 0 && combined.Score >= ValidityThreshold
	combined.Warnings = slices.Clone(basic.Warnings)

	if combined.Warnings == nil {
		combined.Warnings = []string{}
	}

	if !analysis.Success {
		return combined
	}

	for _, issue := range analysis.Issues[:min(len(analysis.Issues), maxOracleRemarks)] {
		combined.Warnings = append(combined.Warnings, oracleRemark(issue))
	}

	return combined
}

func oracleRemark(issue entity.Issue) string {
	message := issue.ShortMessage
	if message == "" {
		message = issue.Message
	}

	remark := "AI: " + message
	if len(issue.Suggestions) > 0 {
		remark += ` (try: "` + issue.Suggestions[0] + `")`
	}

	return remark
}
