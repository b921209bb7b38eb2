package oracle

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf16"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"profile_validator/internal/domain"
	"profile_validator/internal/domain/entity"
	"profile_validator/pkg/errcodes"
)

const (
	languageToolPath     = "/v2/check"
	languageToolLanguage = "en-US"
	maxSuggestions       = 3
)

type languageToolResponse struct {
	Matches []languageToolMatch `json:"matches"`
}

type languageToolReplacement struct {
	Value string `json:"value"`
}

type languageToolMatch struct {
	Message      string `json:"message"`
	ShortMessage string `json:"shortMessage"`
	Context      struct {
		Text   string `json:"text"`
		Offset int    `json:"offset"`
		Length int    `json:"length"`
	} `json:"context"`
	Replacements []languageToolReplacement `json:"replacements"`
	Rule struct {
		Description string `json:"description"`
		IssueType   string `json:"issueType"`
		Category    struct {
			Name string `json:"name"`
		} `json:"category"`
	} `json:"rule"`
}

// LanguageTool checks grammar and spelling through the public LanguageTool
// API and scores the text with the local professionalism heuristic.
type LanguageTool struct {
	httpClient *http.Client
	baseURL    string
}

func NewLanguageTool(httpClient *http.Client, baseURL string) LanguageTool {
	return LanguageTool{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (LanguageTool) Provider() entity.Provider {
	return entity.ProviderLanguageTool
}

func (c LanguageTool) Check(ctx context.Context, text string) (entity.Analysis, error) {
	form := url.Values{
		"text":     {text},
		"language": {languageToolLanguage},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+languageToolPath,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return entity.Analysis{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, err := do(c.httpClient, entity.ProviderLanguageTool, req)
	if err != nil {
		return entity.Analysis{}, fmt.Errorf("do: %w", err)
	}

	var response languageToolResponse

	if !gjson.GetBytes(body, "matches").IsArray() {
		return entity.Analysis{}, domain.NewError(errcodes.OracleBadResponse, "Failed to parse LanguageTool response")
	}

	if err = json.Unmarshal(body, &response); err != nil {
		return entity.Analysis{}, domain.WrapError(err, errcodes.OracleBadResponse, "Failed to parse LanguageTool response")
	}

	issues := lo.Map(response.Matches, func(m languageToolMatch, _ int) entity.Issue {
		return m.issue()
	})

	return entity.Analysis{
		Success:  true,
		Provider: entity.ProviderLanguageTool,
		Issues:   issues,
		Summary:  Summarize(issues, text),
		Score:    Score(issues, text),
	}, nil
}

func (m languageToolMatch) issue() entity.Issue {
	shortMessage := m.ShortMessage
	if shortMessage == "" {
		shortMessage = m.Rule.Description
	}

	replacements := m.Replacements[:min(len(m.Replacements), maxSuggestions)]

	return entity.Issue{
		Message:      m.Message,
		ShortMessage: shortMessage,
		Context:      excerpt(m.Context.Text, m.Context.Offset, m.Context.Length),
		Suggestions: lo.Map(replacements, func(r languageToolReplacement, _ int) string {
			return r.Value
		}),
		Category: m.Rule.Category.Name,
		Type:     m.Rule.IssueType,
		Severity: issueSeverity(m.Rule.IssueType),
	}
}

// excerpt cuts the flagged span out of the context. LanguageTool offsets
// count UTF-16 code units.
func excerpt(text string, offset, length int) string {
	units := utf16.Encode([]rune(text))

	if offset < 0 || length < 0 || offset > len(units) {
		return ""
	}

	end := min(offset+length, len(units))

	return string(utf16.Decode(units[offset:end]))
}

func issueSeverity(issueType string) string {
	switch issueType {
	case "misspelling", "grammar":
		return entity.SeverityHigh
	case "typographical", "inconsistency", "duplication", "style":
		return entity.SeverityMedium
	default:
		return entity.SeverityLow
	}
}
