package scoring

import (
	"math"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/reference"
)

const OverallMaxScore = 100

// Fields lists the fields of the composite score in report order.
//
//nolint:gochecknoglobals
var Fields = []entity.Field{
	entity.FieldName,
	entity.FieldEmail,
	entity.FieldPhone,
	entity.FieldBio,
	entity.FieldSkills,
}

// Profile scores the five profile fields and aggregates them.
func Profile(p entity.Profile) entity.ProfileReport {
	results := map[entity.Field]entity.Result{
		entity.FieldName:   Name(p.Name),
		entity.FieldEmail:  Email(p.Email),
		entity.FieldPhone:  Phone(p.Phone),
		entity.FieldBio:    Bio(p.Bio),
		entity.FieldSkills: Skills(p.Skills),
	}

	return entity.ProfileReport{
		Results: results,
		Summary: Aggregate(results),
	}
}

// Aggregate combines field results into a 0-100 summary. A field missing from
// results counts as invalid with zero points.
func Aggregate(results map[entity.Field]entity.Result) entity.Summary {
	summary := entity.Summary{
		Valid:       true,
		MaxScore:    OverallMaxScore,
		TotalFields: len(Fields),
	}

	for _, field := range Fields {
		result, ok := results[field]
		if !ok || !result.Valid {
			summary.Valid = false
		}

		if ok && result.Valid {
			summary.ValidFields++
		}

		summary.Score += result.Score
	}

	summary.Score = min(max(summary.Score, 0), OverallMaxScore)
	summary.Percentage = int(math.Round(float64(summary.Score) / OverallMaxScore * 100)) //nolint:mnd
	summary.Strength = reference.OverallStrength(summary.Score)

	return summary
}
