// Package scoring holds the field scorers. Every scorer is a pure function of
// its input and the reference tables.
package scoring

import "profile_validator/internal/domain/entity"

const (
	MaxScore          = 20
	ValidityThreshold = 8
)

// scorecard accumulates points and warnings for one field.
type scorecard struct {
	score    int
	warnings []string
}

func newScorecard(base int) *scorecard {
	return &scorecard{
		score:    base,
		warnings: []string{},
	}
}

func (s *scorecard) add(points int) {
	s.score += points
}

func (s *scorecard) warn(message string) {
	s.warnings = append(s.warnings, message)
}

// penalize subtracts points, never going below zero.
func (s *scorecard) penalize(points int) {
	s.score = max(0, s.score-points)
}

func (s *scorecard) result(details map[string]any) entity.Result {
	score := min(max(s.score, 0), MaxScore)

	return entity.Result{
		Valid:    score >= ValidityThreshold,
		Score:    score,
		MaxScore: MaxScore,
		Errors:   []string{},
		Warnings: s.warnings,
		Details:  details,
	}
}

// rejected is the short-circuit result for a hard error.
func rejected(details map[string]any, errs ...string) entity.Result {
	if details == nil {
		details = map[string]any{}
	}

	return entity.Result{
		Valid:    false,
		Score:    0,
		MaxScore: MaxScore,
		Errors:   errs,
		Warnings: []string{},
		Details:  details,
	}
}
