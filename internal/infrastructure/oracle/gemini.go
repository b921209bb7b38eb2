package oracle

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"profile_validator/internal/domain"
	"profile_validator/internal/domain/entity"
	"profile_validator/pkg/errcodes"
)

const headerGeminiAPIKey = "X-Goog-Api-Key"

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type Gemini struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewGemini(httpClient *http.Client, baseURL, apiKey, model string) Gemini {
	return Gemini{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

func (Gemini) Provider() entity.Provider {
	return entity.ProviderGemini
}

func (c Gemini) Check(ctx context.Context, text string) (entity.Analysis, error) {
	if c.apiKey == "" {
		return entity.Analysis{}, domain.NewError(errcodes.OracleNotConfigured, "Gemini API key not configured")
	}

	endpoint := c.baseURL + "/v1beta/models/" + url.PathEscape(c.model) + ":generateContent"
	header := http.Header{headerGeminiAPIKey: {c.apiKey}}

	body, err := postJSON(ctx, c.httpClient, entity.ProviderGemini, endpoint, header, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: fmt.Sprintf(strictReviewPrompt, text)}}}},
	})
	if err != nil {
		return entity.Analysis{}, fmt.Errorf("postJSON: %w", err)
	}

	content := gjson.GetBytes(body, "candidates.0.content.parts.0.text")
	if !content.Exists() {
		return entity.Analysis{}, domain.NewError(errcodes.OracleBadResponse, "Invalid Gemini response structure")
	}

	r, err := decodeReview(entity.ProviderGemini, content.String())
	if err != nil {
		return entity.Analysis{}, fmt.Errorf("decodeReview: %w", err)
	}

	return r.analysis(entity.ProviderGemini), nil
}
