package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/service/scoring"
)

func TestAggregate(t *testing.T) {
	rq := require.New(t)

	perfect := entity.Result{Valid: true, Score: 20, MaxScore: 20}

	testCases := []struct {
		name    string
		results map[entity.Field]entity.Result
		summary entity.Summary
	}{
		{
			name: "All perfect",
			results: map[entity.Field]entity.Result{
				entity.FieldName:   perfect,
				entity.FieldEmail:  perfect,
				entity.FieldPhone:  perfect,
				entity.FieldBio:    perfect,
				entity.FieldSkills: perfect,
			},
			summary: entity.Summary{
				Valid:       true,
				Score:       100,
				MaxScore:    100,
				Percentage:  100,
				Strength:    entity.Strength{Text: "Perfect", Color: "#9c88ff"},
				ValidFields: 5,
				TotalFields: 5,
			},
		},
		{
			name: "One invalid field",
			results: map[entity.Field]entity.Result{
				entity.FieldName:   perfect,
				entity.FieldEmail:  perfect,
				entity.FieldPhone:  {Valid: false, Score: 0, MaxScore: 20},
				entity.FieldBio:    {Valid: true, Score: 12, MaxScore: 20},
				entity.FieldSkills: perfect,
			},
			summary: entity.Summary{
				Valid:       false,
				Score:       72,
				MaxScore:    100,
				Percentage:  72,
				Strength:    entity.Strength{Text: "Good", Color: "#ffa726"},
				ValidFields: 4,
				TotalFields: 5,
			},
		},
		{
			name:    "Nothing scored",
			results: map[entity.Field]entity.Result{},
			summary: entity.Summary{
				Valid:       false,
				MaxScore:    100,
				Strength:    entity.Strength{Text: "None", Color: "#666666"},
				TotalFields: 5,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.summary, scoring.Aggregate(tc.results))
		})
	}
}

func TestProfile(t *testing.T) {
	rq := require.New(t)

	report := scoring.Profile(entity.Profile{
		Name:   "Sok Dara",
		Email:  "sok.dara@gmail.com",
		Phone:  "+855 12 345 678",
		Bio:    "I am a backend engineer with eight years of experience building distributed systems in Go and Python.",
		Skills: "Go, Python, PostgreSQL, Docker, Kubernetes",
	})

	rq.Len(report.Results, 5)
	rq.Equal(20, report.Results[entity.FieldName].Score)
	rq.Equal(18, report.Results[entity.FieldBio].Score)

	// 20 + 20 + 20 + 18 + 20
	rq.Equal(98, report.Summary.Score)
	rq.Equal(98, report.Summary.Percentage)
	rq.Equal("Very Good", report.Summary.Strength.Text)
	rq.True(report.Summary.Valid)
	rq.Equal(5, report.Summary.ValidFields)
}
