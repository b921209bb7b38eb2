package profilecheck

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"profile_validator/internal/domain/entity"
	"profile_validator/internal/domain/service/scoring"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type jsonField struct {
	Field    string   `json:"field"`
	Valid    bool     `json:"valid"`
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type jsonPassword struct {
	Strength int    `json:"strength"`
	Text     string `json:"text"`
}

type jsonAI struct {
	Provider string `json:"provider,omitempty"`
	Success  bool   `json:"success"`
	Score    int    `json:"aiScore,omitempty"`
	Error    string `json:"error,omitempty"`
}

type jsonReport struct {
	Path       string        `json:"path"`
	Index      int           `json:"index"`
	Valid      bool          `json:"valid"`
	Score      int           `json:"score"`
	Percentage int           `json:"percentage"`
	Strength   string        `json:"strength"`
	Fields     []jsonField   `json:"fields"`
	Password   *jsonPassword `json:"password,omitempty"`
	AI         *jsonAI       `json:"ai,omitempty"`
}

func newJSONReport(r Report) jsonReport {
	out := jsonReport{
		Path:       r.Path,
		Index:      r.Index,
		Valid:      r.Valid(),
		Score:      r.Profile.Summary.Score,
		Percentage: r.Profile.Summary.Percentage,
		Strength:   r.Profile.Summary.Strength.Text,
		Fields: lo.Map(scoring.Fields, func(field entity.Field, _ int) jsonField {
			result := r.Profile.Results[field]

			return jsonField{
				Field:    field.String(),
				Valid:    result.Valid,
				Score:    result.Score,
				MaxScore: result.MaxScore,
				Errors:   lo.Ternary(result.Errors == nil, []string{}, result.Errors),
				Warnings: lo.Ternary(result.Warnings == nil, []string{}, result.Warnings),
			}
		}),
	}

	if r.Password != nil {
		out.Password = &jsonPassword{Strength: r.Password.Strength, Text: r.Password.Text}
	}

	if r.Analysis != nil {
		out.AI = &jsonAI{
			Provider: r.Analysis.Provider.String(),
			Success:  r.Analysis.Success,
			Score:    r.Analysis.Score,
			Error:    r.Analysis.Error,
		}
	}

	return out
}

// RenderJSON writes the reports as an indented JSON array.
func RenderJSON(w io.Writer, reports []Report) error {
	b, err := json.MarshalIndent(lo.Map(reports, func(r Report, _ int) jsonReport {
		return newJSONReport(r)
	}), "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return fmt.Errorf("fmt.Fprintln: %w", err)
	}

	return nil
}

type styles struct {
	header  lipgloss.Style
	valid   lipgloss.Style
	invalid lipgloss.Style
	warning lipgloss.Style
	dim     lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		valid:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		invalid: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// RenderText writes a human readable report followed by a totals line.
func RenderText(w io.Writer, reports []Report) error {
	st := newStyles()

	var b strings.Builder

	for _, r := range reports {
		renderReport(&b, st, r)
	}

	invalid := lo.CountBy(reports, func(r Report) bool { return !r.Valid() })
	totals := fmt.Sprintf("%d profiles checked, %d valid, %d invalid", len(reports), len(reports)-invalid, invalid)

	if invalid > 0 {
		b.WriteString(st.invalid.Render(totals))
	} else {
		b.WriteString(st.valid.Render(totals))
	}

	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}

	return nil
}

func renderReport(b *strings.Builder, st styles, r Report) {
	summary := r.Profile.Summary

	title := r.Path
	if r.Index > 0 {
		title = fmt.Sprintf("%s #%d", r.Path, r.Index+1)
	}

	strength := lipgloss.NewStyle().Foreground(lipgloss.Color(summary.Strength.Color))

	fmt.Fprintf(b, "%s  %s %s\n",
		st.header.Render(title),
		strength.Render(fmt.Sprintf("%d/%d", summary.Score, summary.MaxScore)),
		strength.Render(summary.Strength.Text),
	)

	for _, field := range scoring.Fields {
		result := r.Profile.Results[field]
		mark := lo.Ternary(result.Valid, st.valid.Render("✓"), st.invalid.Render("✗"))

		fmt.Fprintf(b, "  %s %-7s %2d/%d\n", mark, field, result.Score, result.MaxScore)

		for _, msg := range result.Errors {
			fmt.Fprintf(b, "      %s\n", st.invalid.Render(msg))
		}

		for _, msg := range result.Warnings {
			fmt.Fprintf(b, "      %s\n", st.warning.Render(msg))
		}
	}

	if r.Password != nil {
		fmt.Fprintf(b, "  %s %d/10 %s\n", st.dim.Render("password"), r.Password.Strength, r.Password.Text)
	}

	if r.Analysis != nil && !r.Analysis.Success {
		fmt.Fprintf(b, "  %s\n", st.dim.Render("AI analysis unavailable: "+r.Analysis.Error))
	}

	b.WriteString("\n")
}
